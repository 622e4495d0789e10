// Package domain holds DTOs for the entities proxy
package domain

import (
	"context"

	"gsa/internal/adapters/gmp"
	"gsa/internal/core/filter"
)

// Links are ready made filter strings for the four page moves
// Previous and Next are empty when there is no such page
type Links struct {
	First    string `json:"first" example:"name~scan first=1 rows=10"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty" example:"name~scan first=11 rows=10"`
	Last     string `json:"last" example:"name~scan first=41 rows=10"`
}

// Page is one page of entities as answered by the backend
type Page struct {
	EntityType string       `json:"entity_type" example:"task"`
	Items      []gmp.Entity `json:"items"`
	Counts     gmp.Counts   `json:"counts"`
	Filter     string       `json:"filter" example:"name~scan first=1 rows=10"`
	FilterID   string       `json:"filter_id,omitempty"`
	Defaulted  bool         `json:"defaulted"`
	Links      Links        `json:"links"`
}

// Lister fetches one page of entities through a filter
type Lister interface {
	GetEntities(ctx context.Context, entityType string, f *filter.Filter) (gmp.EntityPage, error)
}

// ServicePort defines the service contract for entities
type ServicePort interface {
	List(ctx context.Context, entityType, filterString string) (Page, error)
}
