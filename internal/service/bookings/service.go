package bookings

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// Service сервис чтения бронирований с деградацией до полного просмотра
type Service struct {
	bookingRepo BookingRepository
	degraded    DegradedCounter
	logger      Logger
}

// Result результат выборки по набору фильтров
type Result struct {
	Bookings [][]*domain.Booking // по одному срезу на фильтр, в порядке фильтров
	Degraded bool                // хотя бы один фильтр обслужен полным просмотром
}

// NewService создает новый экземпляр сервиса бронирований
// degraded может быть nil
func NewService(bookingRepo BookingRepository, degraded DegradedCounter, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		degraded:    degraded,
		logger:      logger,
	}
}

// QueryMany выполняет индексные запросы по всем фильтрам параллельно.
// Если какой-то запрос не удался, для него используется полный список бронирований
// с фильтрацией в памяти. Полный список загружается не более одного раза за вызов.
func (s *Service) QueryMany(ctx context.Context, filters ...domain.BookingFilter) (*Result, error) {
	result := &Result{Bookings: make([][]*domain.Booking, len(filters))}
	failed := make([]error, len(filters))

	// Шаг 1: Индексные запросы
	var g errgroup.Group
	for i, filter := range filters {
		g.Go(func() error {
			bookings, err := s.bookingRepo.QueryBookings(ctx, filter)
			if err != nil {
				failed[i] = err
				return nil
			}
			result.Bookings[i] = bookings
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: QueryMany - %v", ErrDataUnavailable, err)
	}

	// Шаг 2: Резервный путь для упавших запросов, полный список загружаем один раз
	var all []*domain.Booking
	loaded := false

	for i, queryErr := range failed {
		if queryErr == nil {
			continue
		}

		s.logger.Warn("QueryMany: DegradedQuery - indexed query failed, falling back to full scan: filter=%s, error=%v",
			filters[i].Key(), queryErr)
		if s.degraded != nil {
			s.degraded.Inc()
		}

		if !loaded {
			var err error
			all, err = s.bookingRepo.ListAllBookings(ctx)
			if err != nil {
				s.logger.Error("QueryMany: full scan failed after indexed query error: indexed=%v, scan=%v", queryErr, err)
				return nil, fmt.Errorf("%w: QueryMany - indexed query: %v, full scan: %v", ErrDataUnavailable, queryErr, err)
			}
			loaded = true
		}

		result.Bookings[i] = domain.FilterBookings(all, filters[i])
		result.Degraded = true
	}

	return result, nil
}
