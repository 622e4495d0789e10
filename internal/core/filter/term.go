// Package filter implements the list filter language spoken by the management
// protocol: terms of the form keyword<relation>value joined by spaces, with
// keyword specific coercion, composition and a canonical string form
package filter

import (
	"strings"

	pstrings "gsa/internal/platform/strings"
)

// Relations understood by the server. Anything else is carried through verbatim
const (
	RelEqual    = "="
	RelContains = "~"
	RelLess     = "<"
	RelGreater  = ">"
	RelColon    = ":"
)

// Combinators are bare values joining the surrounding terms
const (
	And = "and"
	Or  = "or"
	Not = "not"
)

// Term is one keyword relation value unit of a filter
// an empty Keyword marks a free text term or a combinator, an empty Relation means none
type Term struct {
	Keyword  string `json:"keyword,omitempty"`
	Relation string `json:"relation,omitempty"`
	Value    Value  `json:"value"`
}

// String renders the term as it appears in a filter string
// values holding whitespace are quoted so they survive tokenization,
// values that already carry quotes are left alone
func (t Term) String() string {
	v := t.Value.String()
	if pstrings.HasSpace(v) && !strings.Contains(v, `"`) {
		v = pstrings.Quote(v)
	}
	return t.Keyword + t.Relation + v
}

// IsCombinator reports whether t is one of the and/or/not tokens
func (t Term) IsCombinator() bool {
	if t.Keyword != "" || t.Relation != "" {
		return false
	}
	return isCombinator(t.Value)
}

// HasKeyword reports whether t carries a keyword
func (t Term) HasKeyword() bool { return t.Keyword != "" }

func isCombinator(v Value) bool {
	return v.is(And) || v.is(Or) || v.is(Not)
}

func combinator(op string) Term { return Term{Value: Str(op)} }
