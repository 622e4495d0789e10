// Package store owns the postgres connection behind the filter repos: opening
// and migrating it, tracing statements and the helpers repos query with
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gsa/internal/platform/logger"
)

// Store is the set of opened backends. The zero value has none
type Store struct {
	Log logger.Logger // zero value discards
	PG  TxRunner      // nil when GSA_PGSQL_DBURL is unset

	migrations    fs.FS
	migrationsDir string
}

// Open applies opts, then connects every backend cfg enables
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := new(Store)
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if !cfg.PG.Enabled {
		return s, nil
	}
	conn, err := openPG(ctx, cfg, s)
	if err != nil {
		return nil, err
	}
	s.PG = conn
	return s, nil
}

// Ping checks every backend that can be pinged
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return errors.New("store not opened")
	}
	p, ok := s.PG.(Pinger)
	if !ok {
		return nil
	}
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("pg: %w", err)
	}
	return nil
}

// Close releases the backends; nil safe
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
