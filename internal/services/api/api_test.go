package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gsa/internal/platform/config"
	phttp "gsa/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMount_WithoutBackends(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{Config: config.New().Prefix("GSA_"), EnableSwagger: true, EnableMetrics: true})

	cases := []struct {
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{http.MethodGet, "/api/v1/meta/health", "", http.StatusOK, `"ok":true`},
		{http.MethodGet, "/api/v1/meta/ready", "", http.StatusOK, `"status":"degraded"`},
		{http.MethodPost, "/api/v1/filters/normalize", `{"filter":"rows=5 name~web"}`, http.StatusOK, `"rows":5`},
		{http.MethodGet, "/api/v1/filters", "", http.StatusServiceUnavailable, ""},
		{http.MethodGet, "/api/v1/entities/task", "", http.StatusServiceUnavailable, ""},
		{http.MethodGet, "/docs/doc.json", "", http.StatusOK, `"/filters/normalize"`},
		{http.MethodGet, "/metrics", "", http.StatusOK, "gsa_"},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))
		if rr.Code != tc.status {
			t.Fatalf("%s %s = %d body=%s", tc.method, tc.path, rr.Code, rr.Body.String())
		}
		if tc.want != "" && !strings.Contains(rr.Body.String(), tc.want) {
			t.Fatalf("%s %s body missing %q: %s", tc.method, tc.path, tc.want, rr.Body.String())
		}
	}
}
