package predict_occupancy

import (
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// Request модель запроса прогноза загрузки
type Request struct {
	ReferenceDate *time.Time // Дата отсчета, nil означает текущий момент
}

// Config параметры прогноза
type Config struct {
	ConfidencePolicy domain.ConfidencePolicy // Политика расчета уверенности
	PaceWindowDays   int                     // Окно расчета темпа бронирований, дни
	Location         *time.Location          // Часовой пояс для календарных периодов

	// Окно исторического темпа заканчивается на дате отсчета минус год.
	// По умолчанию оба темпа считаются по окну до даты отсчета
	HistoricalPaceYearShift bool
}

// DefaultConfig возвращает параметры прогноза по умолчанию
func DefaultConfig() Config {
	return Config{
		ConfidencePolicy: domain.ConfidencePaceWeighted,
		PaceWindowDays:   domain.DefaultPaceWindowDays,
		Location:         time.UTC,
	}
}
