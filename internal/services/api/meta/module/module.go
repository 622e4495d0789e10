// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"gsa/internal/core/version"
	"gsa/internal/modkit"
	phttp "gsa/internal/platform/net/http"
	str "gsa/internal/platform/strings"

	metahttp "gsa/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{startedAt: time.Now()}

	hd := metahttp.Deps{ServiceName: version.Info().Service, StartedAt: m.startedAt}
	// typed nils would read as configured
	if deps.HasPG() {
		hd.PG = deps.PG
	}
	if deps.HasGMP() {
		hd.GMP = deps.GMP
	}

	external := b.Register
	b.Register = func(r phttp.Router) {
		metahttp.Register(r, hd)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) { m.built.Mount(r) }

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
