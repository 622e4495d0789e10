package store

import (
	"errors"
	"io/fs"

	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// newMigrator is a seam for tests
var newMigrator = func(src fs.FS, dir, dbURL string) (migrator, error) {
	d, err := iofs.New(src, dir)
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", d, dbURL)
}

type migrator interface {
	Up() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// Migrate applies every pending up migration found under dir in src
// an already current schema is not an error
func Migrate(log logger.Logger, dbURL string, src fs.FS, dir string) (err error) {
	m, err := newMigrator(src, dir, dbURL)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "open migrations")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debug().Msg("schema up to date")
			return nil
		}
		return perr.Wrap(err, perr.ErrorCodeDB, "apply migrations")
	}
	v, dirty, _ := m.Version()
	log.Info().Uint("version", v).Bool("dirty", dirty).Msg("migrations applied")
	return nil
}
