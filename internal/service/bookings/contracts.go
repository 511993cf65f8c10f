package bookings

import (
	"context"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// QueryBookings индексный запрос по фильтру
	QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	// ListAllBookings полный список без фильтрации (резервный путь)
	ListAllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// DegradedCounter счетчик переходов на резервный путь (prometheus.Counter подходит)
type DegradedCounter interface {
	Inc()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
