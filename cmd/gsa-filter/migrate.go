package main

import (
	"gsa/db"
	"gsa/internal/platform/config"
	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"
	"gsa/internal/platform/store"

	"github.com/spf13/cobra"
)

// migrateDB is swapped in tests
var migrateDB = store.Migrate

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the saved filter schema to GSA_PGSQL_DBURL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg := store.ConfigFrom(config.New().Prefix("GSA_"), "gsa-filter")
			if cfg.PG.URL == "" {
				return perr.InvalidArgf("GSA_PGSQL_DBURL is not set")
			}
			return migrateDB(*logger.Named("migrate"), cfg.PG.URL, db.Migrations, db.MigrationsDir)
		},
	}
}
