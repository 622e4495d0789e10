// Package pagination builds cursor based refetch parameters from a filter
package pagination

import (
	"gsa/internal/core/filter"
)

// Direction names one of the four page moves
type Direction string

// Page moves
const (
	DirFirst    Direction = "first"
	DirLast     Direction = "last"
	DirNext     Direction = "next"
	DirPrevious Direction = "previous"
)

// Valid reports whether d is a known direction
func (d Direction) Valid() bool {
	switch d {
	case DirFirst, DirLast, DirNext, DirPrevious:
		return true
	}
	return false
}

// PageInfo is the cursor state returned with a page of results
type PageInfo struct {
	StartCursor     string `json:"start_cursor,omitempty"`
	EndCursor       string `json:"end_cursor,omitempty"`
	LastPageCursor  string `json:"last_page_cursor,omitempty"`
	HasNextPage     bool   `json:"has_next_page"`
	HasPreviousPage bool   `json:"has_previous_page"`
}

// Params is what a refetch receives. Nil pointers are left out of the request
type Params struct {
	FilterString string  `json:"filter_string"`
	After        *string `json:"after"`
	Before       *string `json:"before"`
	First        *int    `json:"first"`
	Last         *int    `json:"last"`
}

// FirstPage requests the first page
func FirstPage(f *filter.Filter, _ PageInfo) Params {
	return Params{FilterString: filterString(f), First: rows(f)}
}

// LastPage requests the page after the last page cursor
func LastPage(f *filter.Filter, info PageInfo) Params {
	return Params{FilterString: filterString(f), After: ref(info.LastPageCursor), First: rows(f)}
}

// NextPage requests the page after the end cursor
func NextPage(f *filter.Filter, info PageInfo) Params {
	return Params{FilterString: filterString(f), After: ref(info.EndCursor), First: rows(f)}
}

// PreviousPage requests the page before the start cursor, counting from the end
func PreviousPage(f *filter.Filter, info PageInfo) Params {
	return Params{FilterString: filterString(f), Before: ref(info.StartCursor), Last: rows(f)}
}

// Build dispatches on d, unknown directions fall back to the first page
func Build(d Direction, f *filter.Filter, info PageInfo) Params {
	switch d {
	case DirLast:
		return LastPage(f, info)
	case DirNext:
		return NextPage(f, info)
	case DirPrevious:
		return PreviousPage(f, info)
	default:
		return FirstPage(f, info)
	}
}

// Pager binds a filter and its page info to a refetch callback
type Pager struct {
	Filter   *filter.Filter
	PageInfo PageInfo
	Refetch  func(Params)
}

// First refetches the first page
func (p Pager) First() { p.call(FirstPage) }

// Last refetches the last page
func (p Pager) Last() { p.call(LastPage) }

// Next refetches the next page
func (p Pager) Next() { p.call(NextPage) }

// Previous refetches the previous page
func (p Pager) Previous() { p.call(PreviousPage) }

func (p Pager) call(build func(*filter.Filter, PageInfo) Params) {
	if p.Refetch == nil {
		return
	}
	p.Refetch(build(p.Filter, p.PageInfo))
}

// filterString is the simple form sent along with cursors: no page window
func filterString(f *filter.Filter) string {
	if f == nil {
		return ""
	}
	return f.WithoutView().FilterString()
}

// rows is the raw rows value, nil when the filter has none
func rows(f *filter.Filter) *int {
	if f == nil {
		return nil
	}
	v, ok := f.Get("rows")
	if !ok {
		return nil
	}
	n, ok := v.Int()
	if !ok {
		return nil
	}
	return &n
}

func ref(s string) *string { return &s }
