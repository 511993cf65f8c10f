package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"property_id",
	"check_in",
	"check_out",
	"status",
	"total_price",
	"created_at",
}

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// QueryBookings получает бронирования по фильтру
// Использует индексы по check_in, status и created_at
// Статус сравнивается без учета регистра (LOWER(status))
func (r *Repository) QueryBookings(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	qb := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.CheckInFrom != nil {
		qb = qb.Where(squirrel.GtOrEq{"check_in": *filter.CheckInFrom})
	}
	if filter.CheckInBefore != nil {
		qb = qb.Where(squirrel.Lt{"check_in": *filter.CheckInBefore})
	}
	if filter.Status != nil {
		qb = qb.Where(squirrel.Eq{"LOWER(status)": strings.ToLower(string(*filter.Status))})
	}
	if filter.CreatedFrom != nil {
		qb = qb.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedBefore != nil {
		qb = qb.Where(squirrel.Lt{"created_at": *filter.CreatedBefore})
	}

	query, args, err := qb.OrderBy("check_in ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: QueryBookings - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "QueryBookings", query, args)
}

// ListAllBookings получает все бронирования без фильтрации
// Используется как резервный путь, когда индексный запрос недоступен
func (r *Repository) ListAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("check_in ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAllBookings - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryList(ctx, "ListAllBookings", query, args)
}

func (r *Repository) queryList(ctx context.Context, method, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}

func scanBooking(rows *sql.Rows) (*domain.Booking, error) {
	var (
		booking                      domain.Booking
		propertyID, status           sql.NullString
		totalPrice                   sql.NullFloat64
		checkIn, checkOut, createdAt sql.NullTime
	)

	err := rows.Scan(
		&booking.ID,
		&booking.RoomID,
		&propertyID,
		&checkIn,
		&checkOut,
		&status,
		&totalPrice,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// Нормализуем данные на границе хранилища: время в UTC, статус в нижнем регистре
	booking.PropertyID = propertyID.String
	booking.CheckIn = checkIn.Time.UTC()
	booking.CheckOut = checkOut.Time.UTC()
	booking.Status = domain.NormalizeBookingStatus(status.String)
	booking.TotalPrice = totalPrice.Float64
	booking.CreatedAt = createdAt.Time.UTC()

	return &booking, nil
}
