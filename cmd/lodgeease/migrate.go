package main

import (
	"github.com/spf13/cobra"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/gormstore"
)

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create rooms and bookings tables with their indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			gdb, err := openGorm(cfg)
			if err != nil {
				return err
			}
			if sqlDB, err := gdb.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := gormstore.Migrate(gdb); err != nil {
				return err
			}

			log.Info("Schema migrated (driver=%s)", cfg.Database.Driver)
			return nil
		},
	}
}
