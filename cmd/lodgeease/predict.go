package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
	predictOccupancyHandler "github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers/predict_occupancy"
	predictOccupancyUC "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/ptr"
)

func predictCmd(configPath *string) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Print the occupancy forecast for the month after --date",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &predictOccupancyUC.Request{}
			if date != "" {
				ref, err := handlers.ParseDate(date)
				if err != nil {
					return err
				}
				req.ReferenceDate = ptr.Ptr(ref)
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

			result, err := a.forecast.Execute(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(predictOccupancyHandler.FromUseCaseResponse(result))
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "reference date YYYY-MM-DD or RFC3339 (default: today)")

	return cmd
}
