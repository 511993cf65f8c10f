package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/config"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "lodgeease",
		Short:         "LodgeEase occupancy forecasting service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to TOML config")

	rootCmd.AddCommand(
		serveCmd(&configPath),
		predictCmd(&configPath),
		trendsCmd(&configPath),
		migrateCmd(&configPath),
		importCmd(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
