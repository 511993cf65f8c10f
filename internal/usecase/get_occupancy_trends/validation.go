package get_occupancy_trends

import (
	"fmt"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// validateRequest проверяет запрос и возвращает дату отсчета и длину окна
func validateRequest(req *Request, now time.Time, loc *time.Location) (time.Time, int, error) {
	ref := now.In(loc)
	months := domain.DefaultTrendMonths

	if req == nil {
		return ref, months, nil
	}

	if req.ReferenceDate != nil {
		if req.ReferenceDate.IsZero() {
			return time.Time{}, 0, fmt.Errorf("%w: reference date is zero", ErrInvalidInput)
		}
		ref = domain.CivilDateIn(*req.ReferenceDate, loc)
		if ref.Year() < domain.MinReferenceYear || ref.Year() > domain.MaxReferenceYear {
			return time.Time{}, 0, fmt.Errorf("%w: reference year %d out of range", ErrInvalidInput, ref.Year())
		}
	}

	switch {
	case req.Months < 0 || req.Months > domain.MaxTrendMonths:
		return time.Time{}, 0, fmt.Errorf("%w: months must be in [1, %d]", ErrInvalidInput, domain.MaxTrendMonths)
	case req.Months > 0:
		months = req.Months
	}

	return ref, months, nil
}
