package predict_occupancy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// UseCase use case прогноза загрузки номеров на следующий месяц
type UseCase struct {
	roomRepo       RoomRepository
	bookingService BookingService
	config         Config
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingService BookingService,
	config Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:       roomRepo,
		bookingService: bookingService,
		config:         normalizeConfig(config),
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет прогноз загрузки
// Возвращает либо полный результат, либо ошибку, частичных результатов нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ForecastResult, error) {
	// 1. Валидация даты отсчета
	reference, err := resolveReferenceDate(req, uc.timeProvider.Now(), uc.config.Location)
	if err != nil {
		uc.logger.Warn("PredictOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Целевой период и период сравнения
	target := domain.NextMonthPeriod(reference)
	comparison := target.YearEarlier()

	uc.logger.Info("PredictOccupancy: reference=%s, target=%s, comparison=%s",
		reference.Format(domain.DateFormat), target.Label(), comparison.Label())

	// 3. Параллельно получаем номера и подтвержденные бронирования обоих периодов
	snap := snapshot{
		reference:  reference,
		target:     target,
		comparison: comparison,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rooms, err := uc.roomRepo.ListRooms(gctx)
		if err != nil {
			return fmt.Errorf("%w: list rooms: %v", ErrDataUnavailable, err)
		}
		snap.roomCount = len(rooms)
		return nil
	})
	g.Go(func() error {
		result, err := uc.bookingService.QueryMany(gctx,
			domain.ConfirmedCheckInFilter(target),
			domain.ConfirmedCheckInFilter(comparison),
		)
		if err != nil {
			return fmt.Errorf("%w: query bookings: %v", ErrDataUnavailable, err)
		}
		snap.current = result.Bookings[0]
		snap.historical = result.Bookings[1]
		snap.degraded = result.Degraded
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("PredictOccupancy: failed to fetch data for target=%s: %v", target.Label(), err)
		return nil, err
	}

	if snap.degraded {
		uc.logger.Warn("PredictOccupancy: forecast for target=%s computed from full scan", target.Label())
	}

	// 4. Расчет прогноза
	result := computeForecast(snap, uc.config)

	uc.logger.Info("PredictOccupancy: target=%s, predicted=%.2f%%, confidence=%.2f, confirmed=%d, historical=%d, rooms=%d",
		result.TargetPeriod, result.PredictedRate, result.Confidence,
		result.ConfirmedBookings, result.HistoricalBookings, result.TotalRooms)

	return result, nil
}
