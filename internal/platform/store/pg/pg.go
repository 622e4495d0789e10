// Package pg owns the pgx pool backing the filter store
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the subset of pool settings the service exposes
type Config struct {
	URL         string
	AppName     string
	MaxConns    int32
	MinConns    int32
	Slow        time.Duration // statements at or above this are reported as slow; 0 disables
	HealthCheck time.Duration
}

// PG bundles the pool with the tracer that observes it
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

// Option adjusts Open
type Option func(*openState)

type openState struct {
	tracer QueryTracer
	tweak  []func(*pgxpool.Config)
}

// WithTracer reports every statement to t
func WithTracer(t QueryTracer) Option { return func(s *openState) { s.tracer = t } }

// WithPoolConfig lets callers adjust the parsed pool config before dialing
func WithPoolConfig(fn func(*pgxpool.Config)) Option {
	return func(s *openState) {
		if fn != nil {
			s.tweak = append(s.tweak, fn)
		}
	}
}

// newPool is swapped in tests
var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies cfg and opts, and builds the pool
func Open(ctx context.Context, cfg Config, opts ...Option) (*PG, error) {
	var st openState
	for _, o := range opts {
		o(&st)
	}

	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 && cfg.MinConns <= pc.MaxConns {
		pc.MinConns = cfg.MinConns
	}
	if cfg.HealthCheck > 0 {
		pc.HealthCheckPeriod = cfg.HealthCheck
	}
	if cfg.AppName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	for _, fn := range st.tweak {
		fn(pc)
	}

	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: st.tracer, Slow: cfg.Slow}, nil
}

// Close releases the pool; nil safe
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
