// Package api provides the HTTP API for the application
package api

import (
	"time"

	"gsa/internal/adapters/gmp"
	"gsa/internal/platform/config"
	"gsa/internal/platform/logger"
	phttp "gsa/internal/platform/net/http"
	"gsa/internal/platform/store"

	"gsa/internal/modkit"
	"gsa/internal/modkit/httpkit"
	"gsa/internal/modkit/module"
	"gsa/internal/modkit/swaggerkit"

	entitiesmod "gsa/internal/services/api/entities/module"
	filtersdom "gsa/internal/services/api/filters/domain"
	filtersmod "gsa/internal/services/api/filters/module"
	metamod "gsa/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	GMP            *gmp.Client
	Logger         *logger.Logger
	SlowRequest    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		GMP: opt.GMP,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	// filters owns the default filter lookup that entities consumes
	filters := filtersmod.New(deps)
	entities := entitiesmod.New(
		deps,
		modkit.WithPorts(entitiesmod.Ports{
			Defaults: module.MustPortsOf[filtersdom.DefaultsPort](filters),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		filters,
		entities,
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	phttp.MountMetrics(r, "/metrics", opt.EnableMetrics)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.SlowRequest), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
