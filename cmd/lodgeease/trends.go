package main

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	getOccupancyTrendsHandler "github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers/get_occupancy_trends"
)

func trendsCmd(configPath *string) *cobra.Command {
	var (
		date   string
		months int
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Print monthly occupancy and revenue trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := getOccupancyTrendsHandler.ToUseCaseRequest(date, strconv.Itoa(months))
			if err != nil {
				return err
			}

			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := context.Background()
			a, err := newApp(ctx, cfg, log, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.trends.Execute(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(getOccupancyTrendsHandler.FromUseCaseResponse(resp))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "last month of the window, YYYY-MM-DD (default: today)")
	cmd.Flags().IntVar(&months, "months", 0, "window length in months (default 12)")

	return cmd
}
