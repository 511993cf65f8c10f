package predict_occupancy

import (
	"fmt"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// resolveReferenceDate возвращает дату отсчета в часовом поясе прогноза
// Отсутствующая дата заменяется текущим временем
func resolveReferenceDate(req *Request, now time.Time, loc *time.Location) (time.Time, error) {
	if req == nil || req.ReferenceDate == nil {
		return now.In(loc), nil
	}

	ref := *req.ReferenceDate
	if ref.IsZero() {
		return time.Time{}, fmt.Errorf("%w: reference date is zero", ErrInvalidInput)
	}

	ref = domain.CivilDateIn(ref, loc)
	if ref.Year() < domain.MinReferenceYear || ref.Year() > domain.MaxReferenceYear {
		return time.Time{}, fmt.Errorf("%w: reference year %d out of range [%d, %d]",
			ErrInvalidInput, ref.Year(), domain.MinReferenceYear, domain.MaxReferenceYear)
	}

	return ref, nil
}

// normalizeConfig подставляет значения по умолчанию для незаданных параметров
func normalizeConfig(cfg Config) Config {
	defaults := DefaultConfig()
	if !cfg.ConfidencePolicy.IsValid() {
		cfg.ConfidencePolicy = defaults.ConfidencePolicy
	}
	if cfg.PaceWindowDays <= 0 {
		cfg.PaceWindowDays = defaults.PaceWindowDays
	}
	if cfg.Location == nil {
		cfg.Location = defaults.Location
	}
	return cfg
}
