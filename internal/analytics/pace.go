package analytics

import (
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// BookingPace returns bookings per day created within the window of windowDays
// days ending at ref (both ends inclusive). A non-positive window yields 0.
func BookingPace(bookings []*domain.Booking, ref time.Time, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}

	from := ref.AddDate(0, 0, -windowDays)
	count := 0
	for _, b := range bookings {
		if b == nil || b.CreatedAt.Before(from) || b.CreatedAt.After(ref) {
			continue
		}
		count++
	}

	return float64(count) / float64(windowDays)
}
