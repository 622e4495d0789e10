package filter

import (
	"maps"
	"slices"
	"strings"

	perr "gsa/internal/platform/errors"
)

// Filter is an ordered list of terms plus view only extras
// Methods never modify the receiver: every change returns a new *Filter,
// so a filter handed to a renderer or a cache can be shared freely
type Filter struct {
	id      string
	Name    string
	Comment string
	// Type is the entity type a saved filter is meant for (task, result, ...)
	Type string

	terms  []Term
	extras map[string]string
}

// New returns an empty filter
func New() *Filter { return &Filter{} }

// FromTerms builds a filter from already converted terms
func FromTerms(terms ...Term) *Filter {
	return &Filter{terms: slices.Clone(terms)}
}

// ID returns the saved filter id, empty for ad hoc filters
func (f *Filter) ID() string { return f.id }

// WithID returns a copy carrying id
// the id of a filter is fixed once set, changing it is a programming error
func (f *Filter) WithID(id string) (*Filter, error) {
	if f.id != "" && f.id != id {
		return nil, perr.ReadOnlyf("filter id is read-only (has %s)", f.id)
	}
	c := f.Copy()
	c.id = id
	return c, nil
}

// Copy returns an independent clone
func (f *Filter) Copy() *Filter {
	if f == nil {
		return New()
	}
	c := *f
	c.terms = slices.Clone(f.terms)
	c.extras = maps.Clone(f.extras)
	return &c
}

// Len returns the number of terms
func (f *Filter) Len() int { return len(f.terms) }

// IsEmpty reports whether the filter has no terms
func (f *Filter) IsEmpty() bool { return len(f.terms) == 0 }

// AllTerms returns a copy of the term list
func (f *Filter) AllTerms() []Term { return slices.Clone(f.terms) }

// Has reports whether a term for keyword exists
func (f *Filter) Has(keyword string) bool { return f.index(keyword) >= 0 }

// Term returns the first term for keyword
func (f *Filter) Term(keyword string) (Term, bool) {
	if i := f.index(keyword); i >= 0 {
		return f.terms[i], true
	}
	return Term{}, false
}

// Terms returns every term for keyword, composition may leave more than one
func (f *Filter) Terms(keyword string) []Term {
	var out []Term
	for _, t := range f.terms {
		if keyword != "" && t.Keyword == keyword {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the value of the first term for keyword
func (f *Filter) Get(keyword string) (Value, bool) {
	t, ok := f.Term(keyword)
	return t.Value, ok
}

// Set returns a filter where keyword holds value, converted through Convert
// relation defaults to "=" for keyword terms. An existing term keeps its
// position and later duplicates of the keyword are dropped, a new keyword is
// appended. Free text (empty keyword) is always appended
func (f *Filter) Set(keyword string, value Value, relation string) *Filter {
	if relation == "" && keyword != "" {
		relation = RelEqual
	}
	t := Convert(keyword, value, relation)
	c := f.Copy()
	if keyword == "" {
		c.terms = append(c.terms, t)
		return c
	}
	out := c.terms[:0]
	placed := false
	for _, old := range c.terms {
		if old.Keyword != keyword {
			out = append(out, old)
			continue
		}
		if !placed {
			out = append(out, t)
			placed = true
		}
	}
	if !placed {
		out = append(out, t)
	}
	c.terms = out
	return c
}

// SetString is Set with a string value
func (f *Filter) SetString(keyword, value, relation string) *Filter {
	return f.Set(keyword, Str(value), relation)
}

// SetInt is Set with a numeric value and the = relation
func (f *Filter) SetInt(keyword string, n int) *Filter {
	return f.Set(keyword, Int(n), RelEqual)
}

// Delete returns a filter without any term for keyword, absent keywords are fine
func (f *Filter) Delete(keyword string) *Filter {
	c := f.Copy()
	if keyword == "" {
		return c
	}
	c.terms = slices.DeleteFunc(c.terms, func(t Term) bool { return t.Keyword == keyword })
	return c
}

// Extra returns a view only annotation
func (f *Filter) Extra(key string) (string, bool) {
	v, ok := f.extras[key]
	return v, ok
}

// Extras returns a copy of all view only annotations
func (f *Filter) Extras() map[string]string { return maps.Clone(f.extras) }

// SetExtra returns a filter annotated with key=value, never serialized
func (f *Filter) SetExtra(key, value string) *Filter {
	c := f.Copy()
	if c.extras == nil {
		c.extras = map[string]string{}
	}
	c.extras[key] = value
	return c
}

// FilterString is the canonical wire form
func (f *Filter) FilterString() string { return joinTerms(f.terms, nil) }

// String implements fmt.Stringer with the canonical wire form
func (f *Filter) String() string { return f.FilterString() }

// Equals reports whether both filters hold the same terms, ignoring order
func (f *Filter) Equals(o *Filter) bool {
	if o == nil || len(f.terms) != len(o.terms) {
		return false
	}
	a := termStrings(f.terms)
	b := termStrings(o.terms)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

func (f *Filter) index(keyword string) int {
	if keyword == "" {
		return -1
	}
	return slices.IndexFunc(f.terms, func(t Term) bool { return t.Keyword == keyword })
}

func termStrings(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}

// joinTerms renders the terms accepted by keep (all when keep is nil)
func joinTerms(terms []Term, keep func(Term) bool) string {
	var b strings.Builder
	for _, t := range terms {
		if keep != nil && !keep(t) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
