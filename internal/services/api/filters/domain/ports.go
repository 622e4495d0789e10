package domain

import (
	"context"

	"gsa/internal/core/filter"
	"gsa/internal/core/pagination"
)

// ServicePort defines the service contract for filters
type ServicePort interface {
	Create(ctx context.Context, in SaveInput) (SavedFilter, error)
	Get(ctx context.Context, id string) (SavedFilter, error)
	Update(ctx context.Context, id string, in SaveInput) (SavedFilter, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filterString string) (ListResult, error)

	Normalize(ctx context.Context, filterString string) Normalized
	Compose(ctx context.Context, in ComposeInput) (ComposeResult, error)
	Page(ctx context.Context, in PageInput) (pagination.Params, error)

	GetDefault(ctx context.Context, entityType string) (Default, error)
	SetDefault(ctx context.Context, entityType string, in DefaultInput) (Default, error)
}

// DefaultsPort is what other modules use to look up the default filter of an entity type
type DefaultsPort interface {
	// DefaultFilter returns the default for entityType; ok is false when none is set
	DefaultFilter(ctx context.Context, entityType string) (f *filter.Filter, ok bool, err error)
}
