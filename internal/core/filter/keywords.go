package filter

// DefaultRowsPerPage is assumed when a filter carries no rows term
const DefaultRowsPerPage = 50

// SettingKeywords control how a list is presented rather than which entities match
var SettingKeywords = []string{
	"apply_overrides",
	"autofp",
	"first",
	"levels",
	"min_qod",
	"notes",
	"overrides",
	"result_hosts_only",
	"rows",
	"sort",
	"sort-reverse",
	"timezone",
}

var settingSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(SettingKeywords))
	for _, k := range SettingKeywords {
		m[k] = struct{}{}
	}
	return m
}()

// IsSettingKeyword reports whether keyword is a presentation setting
func IsSettingKeyword(keyword string) bool {
	_, ok := settingSet[keyword]
	return ok
}

func isSetting(t Term) bool { return t.Keyword != "" && IsSettingKeyword(t.Keyword) }

func isCriteria(t Term) bool { return !isSetting(t) }

// CriteriaString renders only the terms that select entities
func (f *Filter) CriteriaString() string { return joinTerms(f.terms, isCriteria) }

// SettingsString renders only the presentation settings
func (f *Filter) SettingsString() string { return joinTerms(f.terms, isSetting) }

// MergeSettings takes the setting terms of o that f does not have yet
func (f *Filter) MergeSettings(o *Filter) *Filter {
	c := f.Copy()
	if o == nil {
		return c
	}
	for _, t := range o.terms {
		if isSetting(t) && !c.Has(t.Keyword) {
			c.terms = append(c.terms, t)
		}
	}
	return c
}

// SortBy returns the sort field, looking at sort then sort-reverse
func (f *Filter) SortBy() string {
	if v, ok := f.Get("sort"); ok {
		return v.String()
	}
	if v, ok := f.Get("sort-reverse"); ok {
		return v.String()
	}
	return ""
}

// SortOrder returns "sort-reverse" for descending filters and "sort" otherwise
func (f *Filter) SortOrder() string {
	if !f.Has("sort") && f.Has("sort-reverse") {
		return "sort-reverse"
	}
	return "sort"
}

// SetSortBy keeps the current order and sorts by field
func (f *Filter) SetSortBy(field string) *Filter {
	order := f.SortOrder()
	return f.Delete("sort").Delete("sort-reverse").SetString(order, field, RelEqual)
}

// SetSortOrder switches between "sort" and "sort-reverse" keeping the field
// any other order is treated as "sort"
func (f *Filter) SetSortOrder(order string) *Filter {
	if order != "sort-reverse" {
		order = "sort"
	}
	field := f.SortBy()
	c := f.Delete("sort").Delete("sort-reverse")
	if field == "" {
		return c
	}
	return c.SetString(order, field, RelEqual)
}

// Rows returns the page size, DefaultRowsPerPage when unset
func (f *Filter) Rows() int {
	if v, ok := f.Get("rows"); ok {
		return v.intOr(0)
	}
	return DefaultRowsPerPage
}

// FirstRow returns the 1-based offset of the page, 1 when unset
func (f *Filter) FirstRow() int {
	if v, ok := f.Get("first"); ok {
		return v.intOr(1)
	}
	return 1
}

// First returns the filter for the first page
func (f *Filter) First() *Filter { return f.SetInt("first", 1) }

// Next returns the filter for the following page, unchanged when showing all rows
func (f *Filter) Next() *Filter {
	rows := f.Rows()
	if rows <= 0 {
		return f.Copy()
	}
	return f.SetInt("first", f.FirstRow()+rows)
}

// Previous returns the filter for the preceding page, never before the first row
func (f *Filter) Previous() *Filter {
	rows := f.Rows()
	if rows <= 0 {
		return f.Copy()
	}
	return f.SetInt("first", f.FirstRow()-rows)
}

// Last returns the filter for the final page of total matching entities
func (f *Filter) Last(total int) *Filter {
	rows := f.Rows()
	if rows <= 0 || total <= 0 {
		return f.First()
	}
	return f.SetInt("first", ((total-1)/rows)*rows+1)
}

// All returns a filter requesting the whole unpaginated result set
func (f *Filter) All() *Filter { return f.SetInt("first", 1).SetInt("rows", -1) }

// WithoutView drops the page window (first, rows) leaving criteria and sorting
func (f *Filter) WithoutView() *Filter { return f.Delete("first").Delete("rows") }

// Simple drops the saved filter identity and the extras, keeping every term
// this is what goes on the wire as a literal filter string
func (f *Filter) Simple() *Filter {
	return &Filter{terms: f.AllTerms()}
}
