package middleware

import (
	"net/http"
	"strings"

	pnet "gsa/internal/platform/net"
)

// TokenHeader carries the caller's management protocol session token
const TokenHeader = "X-GMP-Token"

// Token copies the session token from the X-GMP-Token header (or the token
// query parameter the web UI appends) onto the request context
func Token(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := strings.TrimSpace(r.Header.Get(TokenHeader))
		if tok == "" {
			tok = strings.TrimSpace(r.URL.Query().Get("token"))
		}
		next.ServeHTTP(w, r.WithContext(pnet.WithToken(r.Context(), tok)))
	})
}
