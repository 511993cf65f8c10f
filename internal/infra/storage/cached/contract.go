package cached

import (
	"context"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// Observer получает события попаданий и промахов кэша
type Observer interface {
	CacheHit(resource string)
	CacheMiss(resource string)
}
