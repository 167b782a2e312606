package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mytheresa/cookbook/app/config"
	"github.com/mytheresa/cookbook/app/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Store != config.StorePostgres {
			return errors.Errorf("migrate needs the %s store, got %s", config.StorePostgres, cfg.Store)
		}
		db, err := database.Open(cfg.Postgres, log)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
