package predict_occupancy

import (
	"math"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/analytics"
	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

const (
	paceWeightHistory  = 0.6
	paceWeightCoverage = 0.4

	elapsedWeightCoverage = 0.5
	elapsedWeightTime     = 0.5
)

type confidenceInput struct {
	confirmed  int
	historical int
	totalRooms int
	reference  time.Time
}

// scoreConfidence возвращает уверенность прогноза в диапазоне [0, 100]
// Без текущих и исторических бронирований уверенность всегда 0
func scoreConfidence(policy domain.ConfidencePolicy, in confidenceInput) float64 {
	if in.confirmed == 0 && in.historical == 0 {
		return 0
	}

	var score float64
	switch policy {
	case domain.ConfidenceCoverageElapsed:
		score = coverageElapsedScore(in)
	default:
		score = paceWeightedScore(in)
	}

	return analytics.Clamp(score*100, 0, 100)
}

func paceWeightedScore(in confidenceInput) float64 {
	rooms := float64(domain.EffectiveRoomCount(in.totalRooms))
	versusHistory := math.Min(float64(in.confirmed)/math.Max(float64(in.historical), 1), 1)
	coverage := float64(in.confirmed) / rooms

	return paceWeightHistory*versusHistory + paceWeightCoverage*coverage
}

func coverageElapsedScore(in confidenceInput) float64 {
	rooms := float64(domain.EffectiveRoomCount(in.totalRooms))
	coverage := math.Min(float64(in.confirmed)/rooms, 1)

	month := domain.MonthPeriod(in.reference)
	elapsed := float64(in.reference.Day()) / float64(month.Days())

	return elapsedWeightCoverage*coverage + elapsedWeightTime*elapsed
}
