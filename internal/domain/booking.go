package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
// Stored values are normalized to lower case at the storage boundary
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// NormalizeBookingStatus приводит статус из внешнего источника к нижнему регистру
func NormalizeBookingStatus(raw string) BookingStatus {
	return BookingStatus(strings.ToLower(raw))
}

// Is compares statuses case-insensitively
func (s BookingStatus) Is(other BookingStatus) bool {
	return strings.EqualFold(string(s), string(other))
}

// Booking represents a room reservation
type Booking struct {
	ID         string
	RoomID     string
	PropertyID string
	CheckIn    time.Time
	CheckOut   time.Time
	Status     BookingStatus
	TotalPrice float64
	CreatedAt  time.Time
}

// IsConfirmed returns true if the booking counts towards occupancy forecasts
func (b *Booking) IsConfirmed() bool {
	return b.Status.Is(StatusConfirmed)
}

// IsCancelled returns true if the booking was cancelled or the guest never arrived
func (b *Booking) IsCancelled() bool {
	return b.Status.Is(StatusCancelled) || b.Status.Is(StatusNoShow)
}

// IsOccupying returns true if the booking actually holds a room (confirmed or already completed)
func (b *Booking) IsOccupying() bool {
	return b.IsConfirmed() || b.Status.Is(StatusCompleted)
}

// CoversDay reports whether the stay includes the given calendar day.
// Both check-in and check-out days count, days are taken in the location of day.
func (b *Booking) CoversDay(day time.Time) bool {
	loc := day.Location()
	d := StartOfDay(day)
	return !d.Before(StartOfDay(b.CheckIn.In(loc))) && !d.After(StartOfDay(b.CheckOut.In(loc)))
}

// BookingFilter фильтр бронирований
// Диапазоны полуоткрытые: From включительно, Before исключительно.
// nil означает отсутствие ограничения
type BookingFilter struct {
	CheckInFrom   *time.Time
	CheckInBefore *time.Time
	Status        *BookingStatus // сравнивается без учёта регистра
	CreatedFrom   *time.Time
	CreatedBefore *time.Time
}

// ConfirmedCheckInFilter фильтр подтверждённых бронирований с заездом в периоде
func ConfirmedCheckInFilter(period Period) BookingFilter {
	status := StatusConfirmed
	from, before := period.Start, period.EndExclusive()
	return BookingFilter{
		CheckInFrom:   &from,
		CheckInBefore: &before,
		Status:        &status,
	}
}

// CheckInFilter фильтр бронирований в любом статусе с заездом в [from, before)
func CheckInFilter(from, before time.Time) BookingFilter {
	return BookingFilter{CheckInFrom: &from, CheckInBefore: &before}
}

// Matches applies the filter in memory.
// It selects exactly the bookings the indexed storage query selects for the same filter.
func (f BookingFilter) Matches(b *Booking) bool {
	if b == nil {
		return false
	}
	if f.CheckInFrom != nil && b.CheckIn.Before(*f.CheckInFrom) {
		return false
	}
	if f.CheckInBefore != nil && !b.CheckIn.Before(*f.CheckInBefore) {
		return false
	}
	if f.Status != nil && !b.Status.Is(*f.Status) {
		return false
	}
	if f.CreatedFrom != nil && b.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedBefore != nil && !b.CreatedAt.Before(*f.CreatedBefore) {
		return false
	}
	return true
}

// Key returns a stable representation of the filter, used as a cache key
func (f BookingFilter) Key() string {
	var sb strings.Builder
	writeTime := func(name string, t *time.Time) {
		sb.WriteString(name)
		sb.WriteByte('=')
		if t != nil {
			sb.WriteString(t.UTC().Format(time.RFC3339Nano))
		}
		sb.WriteByte(';')
	}

	writeTime("check_in_from", f.CheckInFrom)
	writeTime("check_in_before", f.CheckInBefore)
	sb.WriteString("status=")
	if f.Status != nil {
		sb.WriteString(strings.ToLower(string(*f.Status)))
	}
	sb.WriteByte(';')
	writeTime("created_from", f.CreatedFrom)
	writeTime("created_before", f.CreatedBefore)

	return sb.String()
}

// FilterBookings возвращает бронирования, удовлетворяющие фильтру, сохраняя порядок
func FilterBookings(bookings []*Booking, filter BookingFilter) []*Booking {
	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Matches(b) {
			result = append(result, b)
		}
	}
	return result
}
