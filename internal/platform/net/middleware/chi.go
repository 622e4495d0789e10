// Package middleware holds chi adapters and the in house middlewares
package middleware

import (
	"compress/flate"
	"net/http"
	"time"

	"gsa/internal/platform/logger"
	pstrings "gsa/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the chi handler decorator shape
type Middleware = func(http.Handler) http.Handler

// StackOptions tunes Defaults. Zero values pick the stock settings
type StackOptions struct {
	Timeout   time.Duration // request deadline, 60s when zero
	Compress  int           // flate level, default compression when zero
	Heartbeat string        // answers GET with 200 before any other middleware when set
}

// RequestID reuses an inbound X-Request-ID or mints one, then copies it onto
// the logger context
func RequestID(next http.Handler) http.Handler {
	annotate := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chimw.GetReqID(r.Context())
		w.Header().Set(chimw.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id)))
	})
	return chimw.RequestID(annotate)
}

// Defaults is the router wide chain: real ip, request id, panic recovery,
// deadline, compression and no-cache headers
func Defaults(o StackOptions) []Middleware {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.Compress == 0 {
		o.Compress = flate.DefaultCompression
	}

	var stack []Middleware
	if o.Heartbeat != "" {
		stack = append(stack, chimw.Heartbeat(o.Heartbeat))
	}
	return append(stack,
		chimw.RealIP,
		RequestID,
		RecoverJSON,
		chimw.Timeout(o.Timeout),
		chimw.NewCompressor(o.Compress).Handler,
		chimw.NoCache,
	)
}

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Accept", "Content-Type", chimw.RequestIDHeader, TokenHeader}
)

// CORS allows the session token and request id headers unless told otherwise
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, corsMethods),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   []string{chimw.RequestIDHeader},
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
