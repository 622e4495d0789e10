package filter

import (
	pstrings "gsa/internal/platform/strings"
)

// boolean keywords collapse to 0 or 1
var boolKeywords = map[string]struct{}{
	"apply_overrides":   {},
	"notes":             {},
	"overrides":         {},
	"result_hosts_only": {},
}

// Convert applies the keyword specific coercion rules to a raw keyword relation value triple
// it never fails: unknown keywords and relations pass through untouched
//
// Rules are checked in order and the first match wins:
//
//	value and/or/not             -> bare combinator
//	boolean keywords             -> 0 or 1, relation =
//	first                        -> integer >= 1, relation =
//	rows                         -> integer (negative means all), relation =
//	min_qod                      -> integer, relation =
//	no keyword                   -> free text {relation, value}
//	value "", re, regexp         -> {keyword, value} without relation
//	numeric keyword              -> ~"<keyword><relation><value>"
//	anything else                -> unchanged
func Convert(keyword string, value Value, relation string) Term {
	if isCombinator(value) {
		return Term{Value: value}
	}

	if _, ok := boolKeywords[keyword]; ok {
		n := 1
		if value.intOr(1) == 0 {
			n = 0
		}
		return Term{Keyword: keyword, Relation: RelEqual, Value: Int(n)}
	}

	switch keyword {
	case "first":
		n := value.intOr(1)
		if n < 1 {
			n = 1
		}
		return Term{Keyword: keyword, Relation: RelEqual, Value: Int(n)}
	case "rows":
		return Term{Keyword: keyword, Relation: RelEqual, Value: Int(value.intOr(0))}
	case "min_qod":
		return Term{Keyword: keyword, Relation: RelEqual, Value: Int(value.intOr(0))}
	case "":
		return Term{Relation: relation, Value: value}
	}

	if value.is("") || value.is("re") || value.is("regexp") {
		return Term{Keyword: keyword, Value: value}
	}

	if pstrings.LooksNumeric(keyword) {
		return Term{
			Relation: RelContains,
			Value:    Str(`"` + keyword + relation + value.String() + `"`),
		}
	}

	return Term{Keyword: keyword, Relation: relation, Value: value}
}

// ConvertString is Convert for raw string input
func ConvertString(keyword, value, relation string) Term {
	return Convert(keyword, Str(value), relation)
}
