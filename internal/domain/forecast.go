package domain

import "time"

// ConfidencePolicy selects how forecast confidence is scored
type ConfidencePolicy string

const (
	// ConfidencePaceWeighted: 100 * (0.6 * min(confirmed/max(historical, 1), 1) + 0.4 * confirmed/totalRooms)
	ConfidencePaceWeighted ConfidencePolicy = "pace_weighted"
	// ConfidenceCoverageElapsed: 100 * (0.5 * min(confirmed/totalRooms, 1) + 0.5 * elapsed share of the reference month)
	ConfidenceCoverageElapsed ConfidencePolicy = "coverage_elapsed"
)

// IsValid reports whether the policy is known
func (p ConfidencePolicy) IsValid() bool {
	return p == ConfidencePaceWeighted || p == ConfidenceCoverageElapsed
}

// ForecastResult occupancy forecast for the month after the reference date
type ForecastResult struct {
	TargetPeriod       string    // YYYY-MM
	PeriodStart        time.Time // first instant of the target month
	PeriodEnd          time.Time // last instant of the target month
	ReferenceDate      time.Time // reference date in the forecast location
	PredictedRate      float64   // 0..100
	Confidence         float64   // 0..100
	ConfirmedBookings  int       // confirmed bookings checking in during the target period
	HistoricalBookings int       // confirmed bookings in the same month one year earlier
	TotalRooms         int       // divisor used, never less than 1
	CurrentPace        float64   // bookings per day over the trailing window
	HistoricalRate     float64   // 0..100, same month one year earlier
	ExpectedAdditional float64   // extra occupied rooms per day expected before the period starts
	Details            ForecastDetails
}

// ForecastDetails intermediate values of the forecast
type ForecastDetails struct {
	ComparisonPeriod string  // YYYY-MM
	BaseRate         float64 // 0..100, occupancy from already confirmed bookings
	HistoricalPace   float64
	DaysUntilStart   int
	ConfidencePolicy ConfidencePolicy
	Degraded         bool  // at least one booking query fell back to a full scan
	DailyOccupancy   []int // occupied rooms per day of the target period
}
