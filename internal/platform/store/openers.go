package store

import (
	"context"
	"time"

	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/store/pg"
)

const (
	backoffStart   = 150 * time.Millisecond
	backoffCeiling = 2 * time.Second
)

// sleep is swapped in tests
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// pingPool is swapped in tests
var pingPool = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }

// openPG opens the pool and publishes the adapter once a ping succeeds
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var opts []pg.Option
	if cfg.PG.LogSQL {
		opts = append(opts, pg.WithTracer(pg.Tracer(s.Log)))
	}
	slow := time.Duration(cfg.PG.SlowQueryMs) * time.Millisecond
	if cfg.PG.SlowQueryMs <= 0 {
		slow = -1
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		AppName:  cfg.AppName,
		MaxConns: cfg.PG.MaxConns,
		Slow:     slow,
	}, opts...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "postgres config")
	}

	if err := waitReady(ctx, p, cfg.PG.ConnectRetries, cfg.PG.PingTimeout); err != nil {
		p.Close()
		return nil, err
	}
	if cfg.PG.Migrate && s.migrations != nil {
		if err := Migrate(s.Log, cfg.PG.URL, s.migrations, s.migrationsDir); err != nil {
			p.Close()
			return nil, err
		}
	}
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Bool("log_sql", cfg.PG.LogSQL).Msg("postgres ready")
	return newPGAdapter(p), nil
}

// waitReady pings with exponential backoff until the pool answers
func waitReady(ctx context.Context, p *pg.PG, attempts int, timeout time.Duration) error {
	if attempts <= 0 {
		attempts = 20
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	var lastErr error
	backoff := backoffStart
	for range attempts {
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = pingPool(toCtx, p)
		cancel()
		if lastErr == nil {
			return nil
		}
		if err := sleep(ctx, backoff); err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnavailable, "postgres wait cancelled")
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	return perr.Wrapf(lastErr, perr.ErrorCodeUnavailable, "postgres ping failed after %d attempts", attempts)
}
