// Package module wires filters into the API using modkit
package module

import (
	"gsa/internal/modkit"
	"gsa/internal/modkit/repokit"
	phttp "gsa/internal/platform/net/http"
	str "gsa/internal/platform/strings"
	filtershttp "gsa/internal/services/api/filters/http"
	filtersrepo "gsa/internal/services/api/filters/repo"
	filterssvc "gsa/internal/services/api/filters/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	svc   filterssvc.Service
	ports Ports
}

// New constructs a filters module with the provided dependencies and options
// without postgres the saved filter endpoints answer unavailable and no
// entity type has a default; the stateless filter operations keep working
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	db := repokit.Unavailable("postgres")
	if deps.HasPG() {
		cfg := deps.Cfg.Prefix("FILTERS_")
		db = repokit.WithRetry(
			repokit.WithBeginHooks(deps.PG, repokit.StatementTimeout(cfg.MayInt("STATEMENT_TIMEOUT_MS", 5000))),
			cfg.MayInt("TX_ATTEMPTS", 3),
		)
	}
	ttl := deps.Cfg.Prefix("FILTERS_").MayDuration("DEFAULTS_TTL", filterssvc.DefaultCacheTTL)
	svc := filterssvc.New(db, filtersrepo.NewPG(), filterssvc.WithCacheTTL(ttl))

	m := &Module{deps: deps, svc: svc}
	m.ports = Ports{Filters: adaptFiltersPort{svc: svc}, Defaults: noDefaults{}}
	if deps.HasPG() {
		m.ports.Defaults = adaptDefaultsPort{svc: svc}
	}

	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("filters"),
		modkit.WithPrefix("/filters"),
	}, opts...)...)
	external := b.Register
	b.Register = func(r phttp.Router) {
		filtershttp.Register(r, m.svc)
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r phttp.Router) { m.built.Mount(r) }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }
