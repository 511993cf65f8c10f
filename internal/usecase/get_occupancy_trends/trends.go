package get_occupancy_trends

import (
	"fmt"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/analytics"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/stats"
)

// buildMonthStats считает статистику по каждому месяцу окна
// Выборка ограничена заездами внутри окна: бронирование, переходящее в следующий месяц окна,
// учитывается в обоих месяцах, а заезды до начала окна не учитываются
func buildMonthStats(periods []domain.Period, bookings []*domain.Booking, totalRooms int, loc *time.Location) []MonthStats {
	occupying := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsOccupying() {
			occupying = append(occupying, b)
		}
	}

	groups, _ := analytics.GroupByCalendarMonth(bookings, func(b *domain.Booking) time.Time { return b.CheckIn }, loc)

	result := make([]MonthStats, 0, len(periods))
	for _, period := range periods {
		month := MonthStats{Month: period.Label()}

		for _, b := range groups[month.Month] {
			if b.IsCancelled() {
				continue
			}
			month.Bookings++
			if b.IsOccupying() {
				month.Revenue += b.TotalPrice
			}
		}

		daily := analytics.DailyOccupancyCount(occupying, period)
		month.OccupancyRate = analytics.OccupancyRate(analytics.AverageDaily(daily), totalRooms)

		result = append(result, month)
	}

	return result
}

// applySmoothing заполняет SmoothedOccupancy
func applySmoothing(months []MonthStats) error {
	series := make([]float64, len(months))
	for i, m := range months {
		series[i] = m.OccupancyRate
	}

	smoothed, err := stats.ExponentialSmoothing(series, stats.DefaultSmoothingAlpha)
	if err != nil {
		return fmt.Errorf("smooth occupancy: %w", err)
	}

	for i := range months {
		months[i].SmoothedOccupancy = smoothed[i]
	}
	return nil
}

// fitTrend строит линейный тренд и значение на месяц вперед
func fitTrend(values []float64) Trend {
	fit := stats.LinearRegression(values)
	return Trend{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		NextMonth: fit.Predict(float64(len(values))),
		Fitted:    fit.Fitted(len(values)),
	}
}

// breakdownRooms считает номера по статусам и типам
func breakdownRooms(rooms []*domain.Room) RoomBreakdown {
	breakdown := RoomBreakdown{
		Total:    len(rooms),
		ByStatus: make(map[string]int),
		ByType:   make(map[string]int),
	}

	for _, r := range rooms {
		status := string(r.Status)
		if status == "" {
			status = "unknown"
		}
		roomType := r.Type
		if roomType == "" {
			roomType = "unknown"
		}
		breakdown.ByStatus[status]++
		breakdown.ByType[roomType]++
	}

	return breakdown
}
