package gormstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "lodgeease.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return New(db)
}

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func seedBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: "b1", RoomID: "r1", CheckIn: utc(2025, 6, 1, 0), CheckOut: utc(2025, 6, 3, 11), Status: "Confirmed", TotalPrice: 3000, CreatedAt: utc(2025, 5, 2, 9)},
		{ID: "b2", RoomID: "r2", CheckIn: utc(2025, 6, 30, 23), CheckOut: utc(2025, 7, 2, 11), Status: "confirmed", TotalPrice: 2000, CreatedAt: utc(2025, 5, 25, 9)},
		{ID: "b3", RoomID: "r1", CheckIn: utc(2025, 7, 1, 0), CheckOut: utc(2025, 7, 2, 11), Status: "confirmed", TotalPrice: 1000, CreatedAt: utc(2025, 6, 1, 9)},
		{ID: "b4", RoomID: "r3", CheckIn: utc(2025, 6, 15, 14), CheckOut: utc(2025, 6, 16, 11), Status: "pending", TotalPrice: 1500, CreatedAt: utc(2025, 6, 10, 9)},
		{ID: "b5", RoomID: "r2", CheckIn: utc(2024, 6, 10, 14), CheckOut: utc(2024, 6, 12, 11), Status: "CONFIRMED", TotalPrice: 2500, CreatedAt: utc(2024, 5, 20, 9)},
		{ID: "b6", RoomID: "r3", CheckIn: utc(2025, 6, 20, 14), CheckOut: utc(2025, 6, 21, 11), Status: "cancelled", TotalPrice: 900, CreatedAt: utc(2025, 6, 2, 9)},
	}
}

func ids(bookings []*domain.Booking) []string {
	result := make([]string, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.ID)
	}
	return result
}

func TestStore_RoomsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.UpsertRooms(ctx, []*domain.Room{
		{ID: "r2", Number: "102", Type: "Standard", Status: domain.RoomStatusAvailable, Price: 1800},
		{ID: "r1", Number: "101", Type: "Deluxe", Status: domain.RoomStatusOccupied, Price: 2500},
	}))

	// повторная загрузка обновляет запись, а не дублирует её
	require.NoError(t, store.UpsertRooms(ctx, []*domain.Room{
		{ID: "r1", Number: "101", Type: "Deluxe", Status: domain.RoomStatusMaintenance, Price: 2700},
	}))

	rooms, err := store.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "r1", rooms[0].ID)
	assert.Equal(t, domain.RoomStatusMaintenance, rooms[0].Status)
	assert.Equal(t, 2700.0, rooms[0].Price)
}

func TestStore_QueryBookingsMatchesInMemoryFilter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.UpsertBookings(ctx, seedBookings()))

	all, err := store.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)

	june := domain.MonthPeriod(utc(2025, 6, 1, 0))
	createdFrom, createdBefore := utc(2025, 5, 1, 0), utc(2025, 6, 1, 0)

	filters := map[string]domain.BookingFilter{
		"confirmed in june":      domain.ConfirmedCheckInFilter(june),
		"confirmed in june 2024": domain.ConfirmedCheckInFilter(june.YearEarlier()),
		"any status in june":     domain.CheckInFilter(june.Start, june.EndExclusive()),
		"created in may":         {CreatedFrom: &createdFrom, CreatedBefore: &createdBefore},
		"empty":                  {},
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			indexed, err := store.QueryBookings(ctx, filter)
			require.NoError(t, err)

			assert.ElementsMatch(t, ids(domain.FilterBookings(all, filter)), ids(indexed))
		})
	}
}

func TestStore_QueryBookings_ConfirmedJune(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.UpsertBookings(ctx, seedBookings()))

	bookings, err := store.QueryBookings(ctx, domain.ConfirmedCheckInFilter(domain.MonthPeriod(utc(2025, 6, 1, 0))))
	require.NoError(t, err)

	assert.Equal(t, []string{"b1", "b2"}, ids(bookings))
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, utc(2025, 5, 2, 9), bookings[0].CreatedAt)
}
