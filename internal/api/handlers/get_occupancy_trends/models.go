package get_occupancy_trends

import (
	"math"
	"strconv"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
	getOccupancyTrends "github.com/strix8755/LodgeEaseApp-sub000/internal/usecase/get_occupancy_trends"
	"github.com/strix8755/LodgeEaseApp-sub000/pkg/ptr"
)

// TrendsResponse HTTP модель помесячной аналитики
type TrendsResponse struct {
	From           string        `json:"from"`
	To             string        `json:"to"`
	Months         []MonthStats  `json:"months"`
	OccupancyTrend Trend         `json:"occupancyTrend"`
	RevenueTrend   Trend         `json:"revenueTrend"`
	Rooms          RoomBreakdown `json:"rooms"`
}

type MonthStats struct {
	Month             string  `json:"month"`
	Bookings          int     `json:"bookings"`
	Revenue           float64 `json:"revenue"`
	OccupancyRate     float64 `json:"occupancyRate"`
	SmoothedOccupancy float64 `json:"smoothedOccupancy"`
}

type Trend struct {
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	NextMonth float64   `json:"nextMonth"`
	Fitted    []float64 `json:"fitted"`
}

type RoomBreakdown struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByType   map[string]int `json:"byType"`
}

// ToUseCaseRequest формирует запрос из query параметров date (YYYY-MM-DD или RFC3339) и months
func ToUseCaseRequest(dateStr, monthsStr string) (*getOccupancyTrends.Request, error) {
	req := &getOccupancyTrends.Request{}

	if dateStr != "" {
		date, err := handlers.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.ReferenceDate = ptr.Ptr(date)
	}

	if monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			return nil, err
		}
		req.Months = months
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getOccupancyTrends.Response) *TrendsResponse {
	months := make([]MonthStats, 0, len(resp.Months))
	for _, m := range resp.Months {
		months = append(months, MonthStats{
			Month:             m.Month,
			Bookings:          m.Bookings,
			Revenue:           round2(m.Revenue),
			OccupancyRate:     round2(m.OccupancyRate),
			SmoothedOccupancy: round2(m.SmoothedOccupancy),
		})
	}

	return &TrendsResponse{
		From:           resp.From,
		To:             resp.To,
		Months:         months,
		OccupancyTrend: fromTrend(resp.OccupancyTrend),
		RevenueTrend:   fromTrend(resp.RevenueTrend),
		Rooms: RoomBreakdown{
			Total:    resp.Rooms.Total,
			ByStatus: resp.Rooms.ByStatus,
			ByType:   resp.Rooms.ByType,
		},
	}
}

func fromTrend(t getOccupancyTrends.Trend) Trend {
	fitted := make([]float64, 0, len(t.Fitted))
	for _, v := range t.Fitted {
		fitted = append(fitted, round2(v))
	}
	return Trend{
		Slope:     round2(t.Slope),
		Intercept: round2(t.Intercept),
		NextMonth: round2(t.NextMonth),
		Fitted:    fitted,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
