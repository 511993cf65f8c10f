package predict_occupancy

import (
	"context"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	predictOccupancy "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
)

type PredictOccupancyUseCase interface {
	Execute(ctx context.Context, req *predictOccupancy.Request) (*domain.ForecastResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
