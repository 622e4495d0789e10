// Package http serves the meta endpoints: health checks, build info and the filter
// keyword catalogue
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"gsa/internal/core/filter"
	"gsa/internal/core/version"
	"gsa/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// checkTimeout bounds every backend ping of a readiness check
const checkTimeout = 2 * time.Second

// Pinger is a backend that can be pinged
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are what the meta endpoints report on. A nil backend is reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	GMP         any
	Now         func() time.Time
}

type handlers struct{ Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/filter-keywords", h.keywords)
}

func (h handlers) stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: h.stamp(h.StartedAt), Now: h.stamp(h.Now())}, nil
}

// @Summary Readiness check, pinging every configured backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	backends := []struct {
		name string
		dep  any
	}{{"pg", h.PG}, {"gmp", h.GMP}}

	checks := make([]ReadyCheck, len(backends))
	var g errgroup.Group
	for i, b := range backends {
		g.Go(func() error {
			checks[i] = checkBackend(ctx, b.name, b.dep)
			return nil
		})
	}
	_ = g.Wait()

	return ReadyResponse{Status: rollup(checks), Checks: checks, Now: h.stamp(h.Now())}, nil
}

func checkBackend(ctx stdctx.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	p, ok := dep.(Pinger)
	if !ok {
		return ReadyCheck{Name: name, Status: "unknown"}
	}
	start := time.Now()
	err := p.Ping(ctx)
	c := ReadyCheck{Name: name, Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		c.Status, c.Error = "fail", err.Error()
	}
	return c
}

func rollup(checks []ReadyCheck) string {
	status := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			return "fail"
		}
		if c.Status != "ok" {
			status = "degraded"
		}
	}
	return status
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h handlers) version(_ *http.Request) (any, error) { return version.Info(), nil }

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: h.stamp(h.StartedAt),
		Uptime:  int64(h.Now().Sub(h.StartedAt) / time.Second),
	}, nil
}

// @Summary Filter keywords that control presentation rather than selection
// @Tags Meta
// @Produce json
// @Success 200 {object} KeywordsResponse "ok"
// @Router /meta/filter-keywords [get]
func (h handlers) keywords(_ *http.Request) (any, error) {
	return KeywordsResponse{
		Settings:    append([]string(nil), filter.SettingKeywords...),
		DefaultRows: filter.DefaultRowsPerPage,
	}, nil
}
