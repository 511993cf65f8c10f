package get_occupancy_trends

import (
	"context"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/service/bookings"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// BookingService интерфейс чтения бронирований
type BookingService interface {
	QueryMany(ctx context.Context, filters ...domain.BookingFilter) (*bookings.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
