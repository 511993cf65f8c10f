package predict_occupancy

import (
	"math"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
	predictOccupancy "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/predict_occupancy"
)

// ForecastResponse HTTP модель прогноза загрузки
type ForecastResponse struct {
	TargetPeriod       string          `json:"targetPeriod"`
	PeriodStart        string          `json:"periodStart"`
	PeriodEnd          string          `json:"periodEnd"`
	ReferenceDate      string          `json:"referenceDate"`
	PredictedRate      float64         `json:"predictedRate"`
	Confidence         float64         `json:"confidence"`
	ConfirmedBookings  int             `json:"confirmedBookings"`
	HistoricalBookings int             `json:"historicalBookings"`
	TotalRooms         int             `json:"totalRooms"`
	CurrentPace        float64         `json:"currentPace"`
	HistoricalRate     float64         `json:"historicalRate"`
	ExpectedAdditional float64         `json:"expectedAdditional"`
	Details            ForecastDetails `json:"details"`
}

// ForecastDetails промежуточные значения прогноза
type ForecastDetails struct {
	ComparisonPeriod string  `json:"comparisonPeriod"`
	BaseRate         float64 `json:"baseRate"`
	HistoricalPace   float64 `json:"historicalPace"`
	DaysUntilStart   int     `json:"daysUntilStart"`
	ConfidencePolicy string  `json:"confidencePolicy"`
	Degraded         bool    `json:"degraded"`
	DailyOccupancy   []int   `json:"dailyOccupancy"`
}

// ToUseCaseRequest формирует запрос к use case из query параметра date (YYYY-MM-DD или RFC3339, опционально)
func ToUseCaseRequest(dateStr string) (*predictOccupancy.Request, error) {
	if dateStr == "" {
		return &predictOccupancy.Request{}, nil
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &predictOccupancy.Request{ReferenceDate: &date}, nil
}

// FromUseCaseResponse конвертирует результат прогноза в HTTP ответ
// Дробные значения округляются до сотых
func FromUseCaseResponse(result *domain.ForecastResult) *ForecastResponse {
	return &ForecastResponse{
		TargetPeriod:       result.TargetPeriod,
		PeriodStart:        result.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:          result.PeriodEnd.Format(domain.DateFormat),
		ReferenceDate:      result.ReferenceDate.Format(domain.DateFormat),
		PredictedRate:      round2(result.PredictedRate),
		Confidence:         round2(result.Confidence),
		ConfirmedBookings:  result.ConfirmedBookings,
		HistoricalBookings: result.HistoricalBookings,
		TotalRooms:         result.TotalRooms,
		CurrentPace:        round2(result.CurrentPace),
		HistoricalRate:     round2(result.HistoricalRate),
		ExpectedAdditional: round2(result.ExpectedAdditional),
		Details: ForecastDetails{
			ComparisonPeriod: result.Details.ComparisonPeriod,
			BaseRate:         round2(result.Details.BaseRate),
			HistoricalPace:   round2(result.Details.HistoricalPace),
			DaysUntilStart:   result.Details.DaysUntilStart,
			ConfidencePolicy: string(result.Details.ConfidencePolicy),
			Degraded:         result.Details.Degraded,
			DailyOccupancy:   result.Details.DailyOccupancy,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
