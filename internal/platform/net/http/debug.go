package http

import (
	stdhttp "net/http"

	"gsa/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountProfiler mounts pprof under prefix (e.g. "/debug") when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	h := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Handle(prefix, h)
	r.Handle(prefix+"/*", h)
}

// MountSwagger serves the swagger UI under /docs when enabled
// docURL points the UI at the spec document, "" keeps the default doc.json
func MountSwagger(r Router, docURL string, enabled bool) {
	if !enabled {
		return
	}
	h := httpSwagger.WrapHandler
	if docURL != "" {
		h = httpSwagger.Handler(httpSwagger.URL(docURL))
	}
	r.Get("/docs/*", h)
}

// MountMetrics exposes the prometheus registry at path when enabled
func MountMetrics(r Router, path string, enabled bool) {
	if !enabled {
		return
	}
	r.Handle(path, metrics.Handler())
}
