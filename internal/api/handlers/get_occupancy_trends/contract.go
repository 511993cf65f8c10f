package get_occupancy_trends

import (
	"context"

	getOccupancyTrends "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/get_occupancy_trends"
)

type GetOccupancyTrendsUseCase interface {
	Execute(ctx context.Context, req *getOccupancyTrends.Request) (*getOccupancyTrends.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
