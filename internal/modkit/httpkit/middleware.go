package httpkit

import (
	"net/http"
	"time"

	"gsa/internal/platform/net/middleware"
)

// healthPaths are polled by orchestrators and stay out of the access log
var healthPaths = []string{"/api/v1/meta/health", "/api/v1/meta/ready"}

// CommonStack is the per API middleware slice: session token forwarding and
// the access log. Router wide concerns live in middleware.Defaults
func CommonStack(slow time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow, Quiet: healthPaths}),
		middleware.Token,
	}
}
