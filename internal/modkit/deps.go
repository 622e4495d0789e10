package modkit

import (
	"gsa/internal/adapters/gmp"
	"gsa/internal/modkit/repokit"
	"gsa/internal/platform/config"
	"gsa/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// PG is nil when GSA_PGSQL_DBURL is unset; modules must degrade
	PG repokit.TxRunner

	// GMP talks to the management protocol backend, nil when GSA_GMP_URL is unset
	GMP *gmp.Client
}

// HasPG reports whether a postgres seam is wired
func (d Deps) HasPG() bool { return d.PG != nil }

// HasGMP reports whether a management protocol client is wired
func (d Deps) HasGMP() bool { return d.GMP != nil }
