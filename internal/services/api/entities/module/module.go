// Package module wires the entities proxy into the API using modkit
package module

import (
	"context"

	"gsa/internal/adapters/gmp"
	"gsa/internal/core/filter"
	"gsa/internal/modkit"
	perr "gsa/internal/platform/errors"
	phttp "gsa/internal/platform/net/http"
	str "gsa/internal/platform/strings"
	"gsa/internal/services/api/entities/domain"
	entitieshttp "gsa/internal/services/api/entities/http"
	entitiessvc "gsa/internal/services/api/entities/service"
	filtersdom "gsa/internal/services/api/filters/domain"
)

// Ports are the ports this module consumes, passed with modkit.WithPorts
type Ports struct {
	Defaults filtersdom.DefaultsPort
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   entitiessvc.Service
}

// New constructs an entities module; without a backend client every list
// answers unavailable
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("entities"),
		modkit.WithPrefix("/entities"),
	}, opts...)...)

	var lister domain.Lister = noBackend{}
	if deps.HasGMP() {
		lister = deps.GMP
	}
	var defaults filtersdom.DefaultsPort
	if p, ok := b.Ports.(Ports); ok {
		defaults = p.Defaults
	}

	m := &Module{svc: entitiessvc.New(lister, defaults)}
	external := b.Register
	b.Register = func(r phttp.Router) {
		entitieshttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) { m.built.Mount(r) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.svc }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

type noBackend struct{}

func (noBackend) GetEntities(context.Context, string, *filter.Filter) (gmp.EntityPage, error) {
	return gmp.EntityPage{}, perr.Unavailablef("management protocol backend is not configured")
}
