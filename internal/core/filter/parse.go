package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// relationChars are the single byte operators that split keyword from value
const relationChars = "=~<>:"

// Parse reads a filter string into a Filter, keeping the input term order
// it is best effort and never fails: unknown keywords, stray quotes and
// odd relations are all kept as written
func Parse(s string) *Filter {
	f := New()
	for _, tok := range tokenize(s) {
		f.terms = append(f.terms, parseTerm(tok))
	}
	return f
}

// ParseTerm reads a single token such as name~foo into a converted Term
func ParseTerm(tok string) Term { return parseTerm(tok) }

func parseTerm(tok string) Term {
	i := relationIndex(tok)
	if i < 0 {
		return Convert("", Str(tok), "")
	}
	return Convert(tok[:i], Str(tok[i+1:]), tok[i:i+1])
}

// relationIndex finds the first relation operator outside double quotes, -1 if none
func relationIndex(tok string) int {
	quoted := false
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == '"' {
			quoted = !quoted
			continue
		}
		if !quoted && strings.IndexByte(relationChars, c) >= 0 {
			return i
		}
	}
	return -1
}

// tokenize splits on whitespace outside double quotes
// an unterminated quote runs to the end of the input
func tokenize(s string) []string {
	var (
		out    []string
		b      strings.Builder
		quoted bool
	)
	flush := func() {
		if b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
		}
	}
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		raw := s[:size]
		s = s[size:]
		switch {
		case r == '"':
			quoted = !quoted
			b.WriteString(raw)
		case !quoted && unicode.IsSpace(r):
			flush()
		default:
			b.WriteString(raw)
		}
	}
	flush()
	return out
}
