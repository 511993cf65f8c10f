package analytics

import (
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// DailyOccupancyCount returns, for every calendar day of the period, how many
// bookings cover that day. Check-in and check-out days are both counted.
// Days are taken in the location of period.Start.
func DailyOccupancyCount(bookings []*domain.Booking, period domain.Period) []int {
	days := period.Days()
	if days <= 0 {
		return []int{}
	}

	counts := make([]int, days)
	for _, b := range bookings {
		if b == nil {
			continue
		}

		loc := period.Start.Location()
		first := domain.DaysBetween(period.Start, b.CheckIn.In(loc))
		last := domain.DaysBetween(period.Start, b.CheckOut.In(loc))
		if last < first {
			continue
		}
		if first < 0 {
			first = 0
		}
		if last > days-1 {
			last = days - 1
		}

		for i := first; i <= last; i++ {
			counts[i]++
		}
	}

	return counts
}

// AverageDaily returns the mean of daily counts, 0 for an empty slice
func AverageDaily(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return float64(total) / float64(len(counts))
}

// OccupancyRate converts average occupied rooms per day into a percentage of totalRooms, clamped to [0, 100]
func OccupancyRate(averageOccupied float64, totalRooms int) float64 {
	return Clamp(averageOccupied/float64(domain.EffectiveRoomCount(totalRooms))*100, 0, 100)
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
