// Package strings provides string helpers and the lenient numeric coercions used by filter terms
package strings

import (
	"math"
	std "strings"
	"unicode"
)

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with what when s is blank, else returns s
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix returns s as a mount path with one leading slash and no
// trailing one. A blank or root-only path panics
func MustPrefix(s string) string {
	p := std.Trim(std.TrimSpace(s), "/ ")
	if p == "" {
		panic("mount prefix is required")
	}
	return "/" + p
}

// ParseIntPrefix reads the leading integer of s the way lenient form parsers do:
// leading whitespace and one sign are skipped, digits are consumed until the first
// non digit. ok is false when no digit was found ("abc", "", "-")
func ParseIntPrefix(s string) (n int, ok bool) {
	s = std.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		// saturate instead of wrapping on absurd inputs
		if n < math.MaxInt/10 {
			n = n*10 + int(c-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// IntOr returns the leading integer of s or def when there is none
func IntOr(s string, def int) int {
	if n, ok := ParseIntPrefix(s); ok {
		return n
	}
	return def
}

// LooksNumeric reports whether s is entirely a decimal number:
// an optional sign, digits, and at most one decimal point with at least one digit overall
func LooksNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// IsQuoted reports whether s is wrapped in a pair of double quotes
func IsQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Quote wraps s in double quotes unless it already is
func Quote(s string) string {
	if IsQuoted(s) {
		return s
	}
	return `"` + s + `"`
}

// Unquote strips one pair of surrounding double quotes
func Unquote(s string) string {
	if IsQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// HasSpace reports whether s contains any unicode whitespace
func HasSpace(s string) bool {
	return std.IndexFunc(s, unicode.IsSpace) >= 0
}
