package cached

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

const (
	roomsKey       = "rooms:all"
	allBookingsKey = "bookings:all"
	bookingsPrefix = "bookings:"

	resourceRooms    = "rooms"
	resourceBookings = "bookings"
)

// Repository кэширующая обёртка над репозиториями номеров и бронирований
// Ошибки не кэшируются. Возвращаемые срезы разделяются между вызовами и не должны изменяться
type Repository struct {
	bookings BookingRepository
	rooms    RoomRepository
	store    *cache.Cache
	ttl      time.Duration
	observer Observer
}

// NewRepository создает кэширующий репозиторий
// observer может быть nil
func NewRepository(bookings BookingRepository, rooms RoomRepository, ttl time.Duration, observer Observer) *Repository {
	return &Repository{
		bookings: bookings,
		rooms:    rooms,
		store:    cache.New(ttl, 2*ttl),
		ttl:      ttl,
		observer: observer,
	}
}

// ListRooms возвращает номера из кэша или из нижележащего репозитория
func (r *Repository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	if v, found := r.store.Get(roomsKey); found {
		r.hit(resourceRooms)
		return v.([]*domain.Room), nil
	}
	r.miss(resourceRooms)

	rooms, err := r.rooms.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	r.store.Set(roomsKey, rooms, r.ttl)
	return rooms, nil
}

// QueryBookings кэширует результат по ключу фильтра
func (r *Repository) QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	key := bookingsPrefix + filter.Key()
	if v, found := r.store.Get(key); found {
		r.hit(resourceBookings)
		return v.([]*domain.Booking), nil
	}
	r.miss(resourceBookings)

	bookings, err := r.bookings.QueryBookings(ctx, filter)
	if err != nil {
		return nil, err
	}

	r.store.Set(key, bookings, r.ttl)
	return bookings, nil
}

// ListAllBookings кэширует полный список бронирований
func (r *Repository) ListAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	if v, found := r.store.Get(allBookingsKey); found {
		r.hit(resourceBookings)
		return v.([]*domain.Booking), nil
	}
	r.miss(resourceBookings)

	bookings, err := r.bookings.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}

	r.store.Set(allBookingsKey, bookings, r.ttl)
	return bookings, nil
}

// Flush сбрасывает кэш (например, после импорта данных)
func (r *Repository) Flush() {
	r.store.Flush()
}

func (r *Repository) hit(resource string) {
	if r.observer != nil {
		r.observer.CacheHit(resource)
	}
}

func (r *Repository) miss(resource string) {
	if r.observer != nil {
		r.observer.CacheMiss(resource)
	}
}
