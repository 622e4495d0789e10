// @title         GSA API
// @version       0.1.0
// @description   Filter engine, saved filters and filtered entity listing for the management protocol backend
// @BasePath      /api/v1

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"gsa/db"
	"gsa/internal/adapters/gmp"
	"gsa/internal/modkit/repokit"
	"gsa/internal/platform/config"
	"gsa/internal/platform/logger"
	phttp "gsa/internal/platform/net/http"
	"gsa/internal/platform/net/middleware"
	"gsa/internal/platform/store"

	"gsa/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// .env first so the logger sees LOG_* from it
	if err := config.LoadDotEnv(); err != nil {
		logger.Get().Warn().Err(err).Msg("could not read .env")
	}
	l := logger.Named("gsa-api")

	root := config.New().Prefix("GSA_")
	apiCfg := root.Prefix("API_") // GSA_API_*

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// postgres is optional; without GSA_PGSQL_DBURL saved filters answer unavailable
	st, err := store.Open(ctx,
		store.ConfigFrom(root, "gsa-api"),
		store.WithLogger(*l),
		store.WithMigrations(db.Migrations, db.MigrationsDir),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var backend *gmp.Client
	if opts := gmp.OptionsFrom(root); opts.URL != "" {
		if backend, err = gmp.NewClient(opts); err != nil {
			l.Panic().Err(err).Msg("gmp client")
		}
	} else {
		l.Warn().Msg("GSA_GMP_URL unset; entity listing disabled")
	}

	var deps []repokit.Dep
	if st.PG != nil {
		deps = append(deps, repokit.Dep{Name: "postgres", P: st})
	}
	if backend != nil {
		deps = append(deps, repokit.Dep{Name: "gmp", P: backend})
	}
	if err := repokit.Check(ctx, deps...); err != nil {
		if apiCfg.MayBool("STRICT_STARTUP", false) {
			l.Panic().Err(err).Msg("startup check failed")
		}
		l.Warn().Err(err).Msg("startup check failed; affected endpoints answer unavailable")
	}

	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults(middleware.StackOptions{
			Timeout: apiCfg.MayDuration("REQUEST_TIMEOUT", time.Minute),
		})...)
		m.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			MaxAge:         300,
		}))
	})

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		GMP:            backend,
		Logger:         l,
		SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", time.Second),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
	})

	if err := srv.Run(ctx, apiCfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second)); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
