package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gsa/internal/platform/config"
	phttp "gsa/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type stub struct {
	built Built
}

func (s *stub) MountRoutes(r phttp.Router) { s.built.Mount(r) }
func (s *stub) Ports() any                 { return s.built.Ports }
func (s *stub) Name() string               { return s.built.Name }

var _ Module = (*stub)(nil)

func tagger(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Mw", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}
	b.Register(nil)
}

func TestBuild_OptionsCopyMiddleware(t *testing.T) {
	mw := []func(http.Handler) http.Handler{tagger("a")}
	b := Build(WithName("filters"), WithPrefix("/filters"), WithMiddlewares(mw...), WithMiddlewares(tagger("b")), WithPorts("ports"))
	mw[0] = tagger("z")

	if b.Name != "filters" || b.Prefix != "/filters" || b.Ports != "ports" {
		t.Fatalf("options not applied: %+v", b)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("mw len = %d", len(b.Mw))
	}
}

func TestWithPrefix_Normalizes(t *testing.T) {
	for in, want := range map[string]string{"filters": "/filters", "/filters/": "/filters", "/": "", "": ""} {
		if got := Build(WithPrefix(in)).Prefix; got != want {
			t.Fatalf("WithPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuilt_MountScopesMiddleware(t *testing.T) {
	var built Builder = func(_ Deps, opts ...Option) Module { return &stub{built: Build(opts...)} }

	m := built(Deps{Cfg: config.New()},
		WithName("filters"),
		WithPrefix("/filters"),
		WithMiddlewares(tagger("a"), tagger("b")),
		WithRegister(func(r phttp.Router) {
			r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(phttp.URLParam(r, "id"))) })
		}),
	)
	root := phttp.AdaptChi(chi.NewRouter())
	root.Get("/outside", func(http.ResponseWriter, *http.Request) {})
	m.MountRoutes(root)

	rr := httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/filters/f1", nil))
	if rr.Body.String() != "f1" {
		t.Fatalf("body = %q", rr.Body.String())
	}
	if got := rr.Header().Values("X-Mw"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("middleware order = %v", got)
	}

	rr = httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/outside", nil))
	if len(rr.Header().Values("X-Mw")) != 0 {
		t.Fatalf("module middleware leaked outside its prefix")
	}
	if m.Name() != "filters" {
		t.Fatalf("Name = %q", m.Name())
	}
}

func TestBuilt_MountWithoutPrefix(t *testing.T) {
	b := Build(WithMiddlewares(tagger("g")), WithRegister(func(r phttp.Router) {
		r.Get("/meta/health", func(http.ResponseWriter, *http.Request) {})
	}))
	root := phttp.AdaptChi(chi.NewRouter())
	b.Mount(root)

	rr := httptest.NewRecorder()
	root.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("X-Mw") != "g" {
		t.Fatalf("group mount: code=%d mw=%q", rr.Code, rr.Header().Get("X-Mw"))
	}
}

func TestDeps_Optional(t *testing.T) {
	var d Deps
	if d.HasPG() || d.HasGMP() {
		t.Fatalf("zero Deps should report no backends")
	}
}
