package predict_occupancy

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/service/bookings"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/logger"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/ptr"
)

type fakeStore struct {
	mu       sync.Mutex
	rooms    []*domain.Room
	bookings []*domain.Booking
	roomsErr error
	queryErr error
	scanErr  error
}

func (f *fakeStore) ListRooms(context.Context) ([]*domain.Room, error) {
	if f.roomsErr != nil {
		return nil, f.roomsErr
	}
	return f.rooms, nil
}

func (f *fakeStore) QueryBookings(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return domain.FilterBookings(f.bookings, filter), nil
}

func (f *fakeStore) ListAllBookings(context.Context) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.bookings, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var reference = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

func newUseCase(store *fakeStore, cfg Config) *UseCase {
	log := logger.NewNop()
	svc := bookings.NewService(store, nil, log)
	return NewUseCase(store, svc, cfg, log).WithTimeProvider(fixedTime{now: reference})
}

func makeRooms(n int) []*domain.Room {
	rooms := make([]*domain.Room, 0, n)
	for i := 0; i < n; i++ {
		rooms = append(rooms, &domain.Room{ID: fmt.Sprintf("r%d", i), Status: domain.RoomStatusAvailable})
	}
	return rooms
}

func fullMonthBooking(id string, month domain.Period, status domain.BookingStatus, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		CheckIn:   month.Start,
		CheckOut:  month.End,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestUseCase_Execute_BaseOccupancy(t *testing.T) {
	june := domain.NextMonthPeriod(reference)
	longAgo := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{rooms: makeRooms(10)}
	for i := 0; i < 5; i++ {
		store.bookings = append(store.bookings, fullMonthBooking(fmt.Sprintf("b%d", i), june, "Confirmed", longAgo))
	}
	// не подтверждены, в расчет не входят
	store.bookings = append(store.bookings,
		fullMonthBooking("p1", june, domain.StatusPending, longAgo),
		fullMonthBooking("c1", june, domain.StatusCancelled, longAgo),
	)

	result, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	assert.Equal(t, "2025-06", result.TargetPeriod)
	assert.Equal(t, "2024-06", result.Details.ComparisonPeriod)
	assert.InDelta(t, 50.0, result.PredictedRate, 1e-9)
	assert.InDelta(t, 50.0, result.Details.BaseRate, 1e-9)
	assert.Equal(t, 5, result.ConfirmedBookings)
	assert.Equal(t, 10, result.TotalRooms)
	assert.Equal(t, 0.0, result.CurrentPace)
	assert.Equal(t, 12, result.Details.DaysUntilStart)
	// 0.6 * min(5/1, 1) + 0.4 * 5/10
	assert.InDelta(t, 80.0, result.Confidence, 1e-9)
	assert.False(t, result.Details.Degraded)

	assert.True(t, result.PeriodStart.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, result.ReferenceDate.Equal(reference))
	require.Len(t, result.Details.DailyOccupancy, 30)
	for _, occupied := range result.Details.DailyOccupancy {
		assert.Equal(t, 5, occupied)
	}
}

func TestUseCase_Execute_NoData(t *testing.T) {
	store := &fakeStore{}

	result, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.PredictedRate)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, 1, result.TotalRooms)
	assert.Equal(t, "2025-06", result.TargetPeriod, "nil reference date falls back to now")
}

func TestUseCase_Execute_NoDataCoverageElapsed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConfidencePolicy = domain.ConfidenceCoverageElapsed

	result, err := newUseCase(&fakeStore{rooms: makeRooms(4)}, cfg).Execute(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.PredictedRate)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestUseCase_Execute_ZeroRoomsDoesNotDivideByZero(t *testing.T) {
	june := domain.NextMonthPeriod(reference)
	store := &fakeStore{bookings: []*domain.Booking{
		fullMonthBooking("b1", june, domain.StatusConfirmed, reference.AddDate(0, 0, -1)),
		fullMonthBooking("b2", june, domain.StatusConfirmed, reference.AddDate(0, 0, -2)),
	}}

	result, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalRooms)
	assert.Equal(t, 100.0, result.PredictedRate)
	assert.Equal(t, 100.0, result.Confidence)
}

func TestUseCase_Execute_HistoricalOccupancy(t *testing.T) {
	lastJune := domain.NextMonthPeriod(reference).YearEarlier()

	store := &fakeStore{rooms: makeRooms(20)}
	for i := 0; i < 10; i++ {
		store.bookings = append(store.bookings,
			fullMonthBooking(fmt.Sprintf("h%d", i), lastJune, domain.StatusConfirmed, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	}

	result, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	assert.InDelta(t, 50.0, result.HistoricalRate, 1e-9)
	assert.Equal(t, 10, result.HistoricalBookings)
	// без текущего темпа дополнительных бронирований не ожидается
	assert.Equal(t, 0.0, result.ExpectedAdditional)
	assert.Equal(t, 0.0, result.PredictedRate)
}

func TestUseCase_Execute_PaceExtrapolation(t *testing.T) {
	june := domain.NextMonthPeriod(reference)
	lastJune := june.YearEarlier()

	store := &fakeStore{rooms: makeRooms(10)}
	for i := 0; i < 5; i++ {
		store.bookings = append(store.bookings,
			fullMonthBooking(fmt.Sprintf("h%d", i), lastJune, domain.StatusConfirmed, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	}
	for i := 0; i < 3; i++ {
		store.bookings = append(store.bookings,
			fullMonthBooking(fmt.Sprintf("b%d", i), june, domain.StatusConfirmed, reference.AddDate(0, 0, -i)))
	}

	result, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	// pace = 3/30 = 0.1, historical pace = 0 -> ratio 0.1
	// min(10 * 0.5 * 0.1, 10 - 0.1 * 12) = 0.5
	assert.InDelta(t, 0.1, result.CurrentPace, 1e-9)
	assert.InDelta(t, 0.5, result.ExpectedAdditional, 1e-9)
	assert.InDelta(t, 35.0, result.PredictedRate, 1e-9)
}

// stayBooking подтвержденное бронирование на days календарных дней начиная с checkIn
func stayBooking(id string, checkIn time.Time, days int, createdAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, days-1),
		Status:    domain.StatusConfirmed,
		CreatedAt: createdAt,
	}
}

// paceStore: 10 номеров, 60 бронирований прошлого июня по 3 дня (загрузка 60%),
// созданных 2024-05-15, и 15 бронирований текущего июня по 2 дня, созданных 2025-05-15
func paceStore() *fakeStore {
	june := domain.NextMonthPeriod(reference)
	lastJune := june.YearEarlier()

	store := &fakeStore{rooms: makeRooms(10)}
	for i := 0; i < 60; i++ {
		store.bookings = append(store.bookings, stayBooking(fmt.Sprintf("h%d", i),
			lastJune.Start.AddDate(0, 0, (i%10)*3), 3, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	}
	for i := 0; i < 15; i++ {
		store.bookings = append(store.bookings, stayBooking(fmt.Sprintf("c%d", i),
			june.Start.AddDate(0, 0, i*2), 2, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)))
	}
	return store
}

func TestUseCase_Execute_PaceWindowsEndAtReference(t *testing.T) {
	result, err := newUseCase(paceStore(), DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	// прошлогодние бронирования созданы вне окна [2025-04-20, 2025-05-20]
	assert.InDelta(t, 0.5, result.CurrentPace, 1e-9)
	assert.Equal(t, 0.0, result.Details.HistoricalPace)
	assert.InDelta(t, 60.0, result.HistoricalRate, 1e-9)
	assert.InDelta(t, 10.0, result.Details.BaseRate, 1e-9)
	// min(10 * 0.6 * 0.5/1, 10 - 0.5*12) = 3
	assert.InDelta(t, 3.0, result.ExpectedAdditional, 1e-9)
	assert.InDelta(t, 40.0, result.PredictedRate, 1e-9)
}

func TestUseCase_Execute_HistoricalPaceYearShift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoricalPaceYearShift = true

	result, err := newUseCase(paceStore(), cfg).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	// окно [2024-04-20, 2024-05-20]: 60/30 = 2, ratio 0.25
	assert.InDelta(t, 2.0, result.Details.HistoricalPace, 1e-9)
	assert.InDelta(t, 1.5, result.ExpectedAdditional, 1e-9)
	assert.InDelta(t, 25.0, result.PredictedRate, 1e-9)
}

func TestUseCase_Execute_DegradedFallbackMatchesIndexed(t *testing.T) {
	june := domain.NextMonthPeriod(reference)
	seed := []*domain.Booking{
		fullMonthBooking("b1", june, "CONFIRMED", reference.AddDate(0, 0, -3)),
		fullMonthBooking("b2", june.YearEarlier(), domain.StatusConfirmed, reference.AddDate(-1, 0, -5)),
		fullMonthBooking("b3", june, domain.StatusPending, reference),
	}

	healthy := &fakeStore{rooms: makeRooms(6), bookings: seed}
	expected, err := newUseCase(healthy, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	broken := &fakeStore{rooms: makeRooms(6), bookings: seed, queryErr: errors.New("index not ready")}
	actual, err := newUseCase(broken, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	assert.True(t, actual.Details.Degraded)
	actual.Details.Degraded = false
	assert.Equal(t, expected, actual)
}

func TestUseCase_Execute_DataUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{
			name:  "both booking paths fail",
			store: &fakeStore{queryErr: errors.New("index"), scanErr: errors.New("network")},
		},
		{
			name:  "rooms unavailable",
			store: &fakeStore{roomsErr: errors.New("network")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newUseCase(tt.store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
			assert.ErrorIs(t, err, ErrDataUnavailable)
			assert.Nil(t, result)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{name: "zero date", date: time.Time{}},
		{name: "year too early", date: time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year too late", date: time.Date(9999, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{roomsErr: errors.New("must not be called")}
			_, err := newUseCase(store, DefaultConfig()).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(tt.date)})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_Idempotent(t *testing.T) {
	june := domain.NextMonthPeriod(reference)
	store := &fakeStore{rooms: makeRooms(7), bookings: []*domain.Booking{
		fullMonthBooking("b1", june, domain.StatusConfirmed, reference.AddDate(0, 0, -1)),
		fullMonthBooking("b2", june.YearEarlier(), domain.StatusConfirmed, reference.AddDate(-1, 0, -1)),
	}}
	uc := newUseCase(store, DefaultConfig())

	first, err := uc.Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUseCase_Execute_RatesAlwaysInRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	statuses := []domain.BookingStatus{domain.StatusConfirmed, "Confirmed", domain.StatusPending, domain.StatusCancelled}

	for _, policy := range []domain.ConfidencePolicy{domain.ConfidencePaceWeighted, domain.ConfidenceCoverageElapsed} {
		for iteration := 0; iteration < 50; iteration++ {
			store := &fakeStore{rooms: makeRooms(rnd.Intn(15))}
			for i := 0; i < rnd.Intn(120); i++ {
				checkIn := reference.AddDate(0, 0, rnd.Intn(60)-380+rnd.Intn(2)*365)
				store.bookings = append(store.bookings, &domain.Booking{
					ID:        fmt.Sprintf("b%d", i),
					CheckIn:   checkIn,
					CheckOut:  checkIn.AddDate(0, 0, rnd.Intn(20)),
					Status:    statuses[rnd.Intn(len(statuses))],
					CreatedAt: checkIn.AddDate(0, 0, -rnd.Intn(90)),
				})
			}

			cfg := DefaultConfig()
			cfg.ConfidencePolicy = policy
			result, err := newUseCase(store, cfg).Execute(context.Background(), &Request{ReferenceDate: ptr.Ptr(reference)})
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.PredictedRate, 0.0)
			assert.LessOrEqual(t, result.PredictedRate, 100.0)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 100.0)
			assert.GreaterOrEqual(t, result.TotalRooms, 1)
		}
	}
}
