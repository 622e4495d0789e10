package store

import (
	"io/fs"

	"gsa/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPG installs an already opened postgres seam, used by tests and tools
// that manage their own pool
func WithPG(tx TxRunner) Option {
	return func(s *Store) error {
		s.PG = tx
		return nil
	}
}

// WithMigrations registers schema migrations applied after postgres is
// reachable when PGConfig.Migrate is set
func WithMigrations(src fs.FS, dir string) Option {
	return func(s *Store) error {
		s.migrations = src
		s.migrationsDir = dir
		return nil
	}
}
