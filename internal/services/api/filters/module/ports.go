package module

import (
	"context"

	"gsa/internal/core/filter"
	"gsa/internal/core/pagination"
	filtersdom "gsa/internal/services/api/filters/domain"
	filterssvc "gsa/internal/services/api/filters/service"
)

// Ports is the port set other modules can pull with module.PortsOf
type Ports struct {
	Filters  filtersdom.ServicePort
	Defaults filtersdom.DefaultsPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFiltersPort adapts the filters service to the domain port interface
type adaptFiltersPort struct{ svc filterssvc.Service }

func (a adaptFiltersPort) Create(ctx context.Context, in filtersdom.SaveInput) (filtersdom.SavedFilter, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptFiltersPort) Get(ctx context.Context, id string) (filtersdom.SavedFilter, error) {
	return a.svc.Get(ctx, id)
}

func (a adaptFiltersPort) Update(ctx context.Context, id string, in filtersdom.SaveInput) (filtersdom.SavedFilter, error) {
	return a.svc.Update(ctx, id, in)
}

func (a adaptFiltersPort) Delete(ctx context.Context, id string) error { return a.svc.Delete(ctx, id) }

func (a adaptFiltersPort) List(ctx context.Context, filterString string) (filtersdom.ListResult, error) {
	return a.svc.List(ctx, filterString)
}

func (a adaptFiltersPort) Normalize(ctx context.Context, filterString string) filtersdom.Normalized {
	return a.svc.Normalize(ctx, filterString)
}

func (a adaptFiltersPort) Compose(ctx context.Context, in filtersdom.ComposeInput) (filtersdom.ComposeResult, error) {
	return a.svc.Compose(ctx, in)
}

func (a adaptFiltersPort) Page(ctx context.Context, in filtersdom.PageInput) (pagination.Params, error) {
	return a.svc.Page(ctx, in)
}

func (a adaptFiltersPort) GetDefault(ctx context.Context, entityType string) (filtersdom.Default, error) {
	return a.svc.GetDefault(ctx, entityType)
}

func (a adaptFiltersPort) SetDefault(ctx context.Context, entityType string, in filtersdom.DefaultInput) (filtersdom.Default, error) {
	return a.svc.SetDefault(ctx, entityType, in)
}

// adaptDefaultsPort exposes only the default filter lookup
type adaptDefaultsPort struct{ svc filterssvc.Service }

// DefaultFilter implements the domain DefaultsPort interface
func (a adaptDefaultsPort) DefaultFilter(ctx context.Context, entityType string) (*filter.Filter, bool, error) {
	return a.svc.DefaultFilter(ctx, entityType)
}

// noDefaults is served when there is no database to keep defaults in
type noDefaults struct{}

func (noDefaults) DefaultFilter(context.Context, string) (*filter.Filter, bool, error) {
	return nil, false, nil
}
