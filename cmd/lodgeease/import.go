package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/importer"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/infra/storage/gormstore"
)

func importCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON export of rooms and bookings into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open dump: %w", err)
			}
			defer f.Close()

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

			stats, err := importer.New(gormstore.New(gdb), log).Import(context.Background(), f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d rooms (%d skipped), %d bookings (%d skipped)\n",
				stats.Rooms, stats.SkippedRooms, stats.Bookings, stats.SkippedBookings)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to JSON dump")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
