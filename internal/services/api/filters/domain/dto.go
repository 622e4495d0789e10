// Package domain holds DTOs for the filters http and service contracts
package domain

import (
	"time"

	"gsa/internal/core/filter"
	"gsa/internal/core/pagination"
)

// SavedFilter is a named filter stored for later use
type SavedFilter struct {
	ID         string    `json:"id" example:"6f0d3c52-8a59-4f5f-9d3f-3f1f2b2a7c11"`
	Name       string    `json:"name" example:"High severity"`
	Comment    string    `json:"comment" example:"results worth a look"`
	Type       string    `json:"type" example:"result"`
	Term       string    `json:"term" example:"severity>6.9 sort-reverse=severity rows=25"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Filter returns the parsed term carrying the saved id
func (s SavedFilter) Filter() *filter.Filter {
	f, _ := filter.Parse(s.Term).WithID(s.ID)
	return f
}

// SaveInput creates or replaces a saved filter
type SaveInput struct {
	Name    string `json:"name" validate:"required,min=1,max=200" example:"High severity"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	Type    string `json:"type,omitempty" validate:"omitempty,entity_type" example:"result"`
	Term    string `json:"term" validate:"max=4000" example:"severity>6.9 rows=25"`
}

// Counts describes the window a list response covers
type Counts struct {
	First    int `json:"first"`
	Rows     int `json:"rows"`
	Length   int `json:"length"`
	Filtered int `json:"filtered"`
}

// ListResult is one page of saved filters
type ListResult struct {
	Items  []SavedFilter `json:"items"`
	Counts Counts        `json:"counts"`
	Filter string        `json:"filter"`
}

// FilterInput carries a raw filter string
type FilterInput struct {
	Filter string `json:"filter" validate:"max=4000" example:"name~scan rows=10 first=1"`
}

// Normalized is the canonical breakdown of a filter string
type Normalized struct {
	Canonical string        `json:"canonical"`
	Criteria  string        `json:"criteria"`
	Settings  string        `json:"settings"`
	Terms     []filter.Term `json:"terms"`
	SortBy    string        `json:"sort_by,omitempty"`
	SortOrder string        `json:"sort_order"`
	First     int           `json:"first"`
	Rows      int           `json:"rows"`
}

// Normalize breaks f down into its canonical parts
func Normalize(f *filter.Filter) Normalized {
	terms := f.AllTerms()
	if terms == nil {
		terms = []filter.Term{}
	}
	return Normalized{
		Canonical: f.FilterString(),
		Criteria:  f.CriteriaString(),
		Settings:  f.SettingsString(),
		Terms:     terms,
		SortBy:    f.SortBy(),
		SortOrder: f.SortOrder(),
		First:     f.FirstRow(),
		Rows:      f.Rows(),
	}
}

// ComposeInput joins two filters with a combinator; not ignores right
type ComposeInput struct {
	Left  string `json:"left" validate:"max=4000" example:"name~scan"`
	Right string `json:"right,omitempty" validate:"max=4000" example:"severity>5"`
	Op    string `json:"op" validate:"required,oneof=and or not" example:"and"`
}

// ComposeResult is the composed filter string
type ComposeResult struct {
	Filter string `json:"filter"`
}

// PageInput asks for the refetch parameters of a page move
type PageInput struct {
	Filter    string               `json:"filter" validate:"max=4000"`
	PageInfo  pagination.PageInfo  `json:"page_info"`
	Direction pagination.Direction `json:"direction" validate:"required,oneof=first last next previous" example:"next"`
}

// DefaultInput points an entity type at a saved filter, empty clears it
type DefaultInput struct {
	FilterID string `json:"filter_id" validate:"omitempty,uuid" example:"6f0d3c52-8a59-4f5f-9d3f-3f1f2b2a7c11"`
}

// Default is the saved filter applied to an entity type when none is given
type Default struct {
	EntityType string       `json:"entity_type"`
	Filter     *SavedFilter `json:"filter"`
}
