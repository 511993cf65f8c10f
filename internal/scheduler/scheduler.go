package scheduler

import (
	"context"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	predictOccupancy "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
)

type forecaster interface {
	Execute(ctx context.Context, req *predictOccupancy.Request) (*domain.ForecastResult, error)
}

// Publisher получает результат каждого пересчета
type Publisher interface {
	SetForecast(predictedRate, confidence float64)
	ForecastFailed()
}

// Invalidator сбрасывает кэш чтений перед пересчетом
type Invalidator interface {
	Flush()
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодически пересчитывает прогноз загрузки на следующий месяц
type Scheduler struct {
	forecaster  forecaster
	publisher   Publisher
	invalidator Invalidator
	interval    time.Duration
	logger      Logger
}

// New создает планировщик, invalidator может быть nil
func New(
	forecaster forecaster,
	publisher Publisher,
	invalidator Invalidator,
	interval time.Duration,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		forecaster:  forecaster,
		publisher:   publisher,
		invalidator: invalidator,
		interval:    interval,
		logger:      logger,
	}
}

// Start выполняет пересчет сразу и затем раз в interval до отмены ctx
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Forecast scheduler started, interval=%s", s.interval)
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Forecast scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Flush()
	}

	result, err := s.forecaster.Execute(ctx, &predictOccupancy.Request{})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("Scheduled forecast failed: %v", err)
		s.publisher.ForecastFailed()
		return
	}

	s.publisher.SetForecast(result.PredictedRate, result.Confidence)
	s.logger.Info("Scheduled forecast for %s: predicted=%.2f%%, confidence=%.2f, degraded=%t",
		result.TargetPeriod, result.PredictedRate, result.Confidence, result.Details.Degraded)
}
