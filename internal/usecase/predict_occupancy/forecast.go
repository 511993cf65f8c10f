package predict_occupancy

import (
	"math"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/analytics"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// snapshot данные, на которых считается один прогноз
type snapshot struct {
	reference  time.Time
	target     domain.Period
	comparison domain.Period
	roomCount  int
	current    []*domain.Booking // подтвержденные, заезд в целевом периоде
	historical []*domain.Booking // подтвержденные, заезд в периоде сравнения
	degraded   bool
}

// computeForecast чистый расчет прогноза по снимку данных
func computeForecast(s snapshot, cfg Config) *domain.ForecastResult {
	totalRooms := domain.EffectiveRoomCount(s.roomCount)

	// Базовая загрузка по уже подтвержденным бронированиям
	daily := analytics.DailyOccupancyCount(s.current, s.target)
	baseOccupied := analytics.AverageDaily(daily)
	baseRate := analytics.OccupancyRate(baseOccupied, totalRooms)

	// Загрузка того же месяца год назад
	historicalOccupied := analytics.AverageDaily(analytics.DailyOccupancyCount(s.historical, s.comparison))
	historicalRate := analytics.OccupancyRate(historicalOccupied, totalRooms)

	// Темп бронирований за окно, заканчивающееся датой отсчета
	historicalRef := s.reference
	if cfg.HistoricalPaceYearShift {
		historicalRef = s.reference.AddDate(-1, 0, 0)
	}
	currentPace := analytics.BookingPace(s.current, s.reference, cfg.PaceWindowDays)
	historicalPace := analytics.BookingPace(s.historical, historicalRef, cfg.PaceWindowDays)

	daysUntilStart := s.target.DaysUntilStart(s.reference)
	expected := expectedAdditional(totalRooms, historicalRate, currentPace, historicalPace, daysUntilStart)

	predicted := analytics.Clamp((baseOccupied+expected)/float64(totalRooms)*100, 0, 100)

	confidence := scoreConfidence(cfg.ConfidencePolicy, confidenceInput{
		confirmed:  len(s.current),
		historical: len(s.historical),
		totalRooms: totalRooms,
		reference:  s.reference,
	})

	return &domain.ForecastResult{
		TargetPeriod:       s.target.Label(),
		PeriodStart:        s.target.Start,
		PeriodEnd:          s.target.End,
		ReferenceDate:      s.reference,
		PredictedRate:      predicted,
		Confidence:         confidence,
		ConfirmedBookings:  len(s.current),
		HistoricalBookings: len(s.historical),
		TotalRooms:         totalRooms,
		CurrentPace:        currentPace,
		HistoricalRate:     historicalRate,
		ExpectedAdditional: expected,
		Details: domain.ForecastDetails{
			ComparisonPeriod: s.comparison.Label(),
			BaseRate:         baseRate,
			HistoricalPace:   historicalPace,
			DaysUntilStart:   daysUntilStart,
			ConfidencePolicy: cfg.ConfidencePolicy,
			Degraded:         s.degraded,
			DailyOccupancy:   daily,
		},
	}
}

// expectedAdditional оценка дополнительных занятых номеров в сутки до начала периода.
// Историческая оценка ограничена оставшейся емкостью, результат не меньше нуля.
func expectedAdditional(totalRooms int, historicalRate, currentPace, historicalPace float64, daysUntilStart int) float64 {
	rooms := float64(totalRooms)
	paceRatio := currentPace / math.Max(historicalPace, 1)

	byHistory := rooms * (historicalRate / 100) * paceRatio
	byCapacity := rooms - currentPace*float64(daysUntilStart)

	return math.Max(0, math.Min(byHistory, byCapacity))
}
