package modkit

import (
	"net/http"
	"strings"

	phttp "gsa/internal/platform/net/http"
)

// Built is what a module keeps after its options are applied
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Option sets one field of Built
type Option func(*Built)

// WithName names the module in logs and startup checks
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix mounts the module under prefix; "filters", "/filters" and
// "/filters/" are the same prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) {
		if p := strings.Trim(prefix, "/"); p != "" {
			b.Prefix = "/" + p
		}
	}
}

// WithMiddlewares appends module scoped middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from other modules. The
// concrete type is declared by the consuming module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRegister sets the function attaching endpoints to the module router
func WithRegister(fn func(phttp.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts in order
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Register == nil {
		b.Register = func(phttp.Router) {}
	}
	return b
}

// Mount attaches the module to r, under Prefix when set, with its
// middleware scoped to the module subtree
func (b Built) Mount(r phttp.Router) {
	attach := func(sub phttp.Router) {
		sub.Use(b.Mw...)
		b.Register(sub)
	}
	if b.Prefix == "" {
		r.Group(attach)
		return
	}
	r.Route(b.Prefix, attach)
}
