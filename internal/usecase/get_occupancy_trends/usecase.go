package get_occupancy_trends

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/analytics"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// UseCase use case помесячной аналитики загрузки и выручки
type UseCase struct {
	roomRepo       RoomRepository
	bookingService BookingService
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// location задает часовой пояс календарных месяцев, nil означает UTC
func NewUseCase(
	roomRepo RoomRepository,
	bookingService BookingService,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		roomRepo:       roomRepo,
		bookingService: bookingService,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute строит помесячную статистику за окно, заканчивающееся месяцем даты отсчета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	ref, monthsCount, err := validateRequest(req, uc.timeProvider.Now(), uc.location)
	if err != nil {
		uc.logger.Warn("GetOccupancyTrends: validation failed: %v", err)
		return nil, err
	}

	periods := analytics.MonthRange(ref, monthsCount)
	from, to := periods[0], periods[len(periods)-1]

	uc.logger.Info("GetOccupancyTrends: window %s..%s (%d months)", from.Label(), to.Label(), monthsCount)

	// 2. Параллельно получаем номера и бронирования окна
	var (
		rooms    []*domain.Room
		bookings []*domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rooms, err = uc.roomRepo.ListRooms(gctx)
		if err != nil {
			return fmt.Errorf("%w: list rooms: %v", ErrDataUnavailable, err)
		}
		return nil
	})
	g.Go(func() error {
		result, err := uc.bookingService.QueryMany(gctx, domain.CheckInFilter(from.Start, to.EndExclusive()))
		if err != nil {
			return fmt.Errorf("%w: query bookings: %v", ErrDataUnavailable, err)
		}
		bookings = result.Bookings[0]
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetOccupancyTrends: failed to fetch data: %v", err)
		return nil, err
	}

	// 3. Помесячная статистика
	totalRooms := domain.EffectiveRoomCount(len(rooms))
	months := buildMonthStats(periods, bookings, totalRooms, uc.location)

	if err := applySmoothing(months); err != nil {
		uc.logger.Error("GetOccupancyTrends: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Тренды
	occupancy := make([]float64, len(months))
	revenue := make([]float64, len(months))
	for i, m := range months {
		occupancy[i] = m.OccupancyRate
		revenue[i] = m.Revenue
	}

	occupancyTrend := fitTrend(occupancy)
	occupancyTrend.NextMonth = analytics.Clamp(occupancyTrend.NextMonth, 0, 100)

	revenueTrend := fitTrend(revenue)
	if revenueTrend.NextMonth < 0 {
		revenueTrend.NextMonth = 0
	}

	uc.logger.Info("GetOccupancyTrends: %d bookings analysed, occupancy slope=%.2f, revenue slope=%.2f",
		len(bookings), occupancyTrend.Slope, revenueTrend.Slope)

	return &Response{
		From:           from.Label(),
		To:             to.Label(),
		Months:         months,
		OccupancyTrend: occupancyTrend,
		RevenueTrend:   revenueTrend,
		Rooms:          breakdownRooms(rooms),
	}, nil
}
