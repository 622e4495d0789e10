package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"gsa/internal/platform/logger"
	"gsa/internal/platform/metrics"
	phttp "gsa/internal/platform/net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	// Slow logs requests at or above it at warn; 0 never does
	Slow time.Duration
	// Quiet paths are measured but not logged (health checks, scrapes)
	Quiet []string
}

// AccessLog writes one line per request through the request scoped logger and
// feeds the http collectors. Metrics are labelled by route pattern, not path
func AccessLog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := phttp.RoutePattern(r)
			metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(took.Seconds())

			if slices.Contains(opt.Quiet, r.URL.Path) {
				return
			}
			l := logger.C(r.Context())
			e := l.Info()
			if opt.Slow > 0 && took >= opt.Slow {
				e = l.Warn().Bool("slow", true)
			}
			e.Str("method", r.Method).
				Str("route", route).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("took", took).
				Msg("http request")
		})
	}
}
