package filter

import perr "gsa/internal/platform/errors"

// Compose applies op to left and right. not negates left and ignores right
func Compose(op string, left, right *Filter) (*Filter, error) {
	switch op {
	case And:
		return left.And(right), nil
	case Or:
		return left.Or(right), nil
	case Not:
		return left.Not(), nil
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown combinator %q, want and, or or not", op), "op")
}

// And returns f joined with the criteria of o by an and combinator
func (f *Filter) And(o *Filter) *Filter { return f.join(o, And) }

// Or returns f joined with the criteria of o by an or combinator
func (f *Filter) Or(o *Filter) *Filter { return f.join(o, Or) }

// join appends the criteria of o after op. Criteria keywords present on both
// sides are kept twice, the server combines all terms. Settings and extras
// of o only fill what f is missing
func (f *Filter) join(o *Filter, op string) *Filter {
	c := f.Copy()
	if o == nil {
		return c
	}

	var criteria []Term
	for _, t := range o.terms {
		if isCriteria(t) {
			criteria = append(criteria, t)
		}
	}
	if len(criteria) > 0 {
		if hasCriteria(c.terms) {
			c.terms = append(c.terms, combinator(op))
		}
		c.terms = append(c.terms, criteria...)
	}

	c = c.MergeSettings(o)
	for k, v := range o.extras {
		if _, ok := c.extras[k]; ok {
			continue
		}
		if c.extras == nil {
			c.extras = map[string]string{}
		}
		c.extras[k] = v
	}
	return c
}

// Not returns f with its criteria negated. Criteria read left to right, a
// not binds to the next term and a missing combinator means and, so the
// negation flips every term and swaps and with or:
//
//	a or b    -> not a and not b
//	not a b   -> a or not b
//
// Settings keep their place; a trailing combinator is dropped
func (f *Filter) Not() *Filter {
	c := f.Copy()
	out := make([]Term, 0, 2*len(c.terms))

	var (
		op      = And
		negated bool
		seen    bool
	)
	for _, t := range c.terms {
		switch {
		case !isCriteria(t):
			out = append(out, t)
		case t.IsCombinator() && t.Value.is(Not):
			negated = !negated
		case t.IsCombinator():
			op = t.Value.String()
		default:
			if seen {
				out = append(out, combinator(dual(op)))
			}
			if !negated {
				out = append(out, combinator(Not))
			}
			out = append(out, t)
			op, negated, seen = And, false, true
		}
	}
	c.terms = out
	return c
}

func dual(op string) string {
	if op == Or {
		return And
	}
	return Or
}

func hasCriteria(terms []Term) bool { return firstCriteria(terms) >= 0 }

func firstCriteria(terms []Term) int {
	for i, t := range terms {
		if isCriteria(t) {
			return i
		}
	}
	return -1
}
