package predict_occupancy

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате отсчета
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataUnavailable возвращается, когда данные о номерах или бронированиях недоступны
	ErrDataUnavailable = errors.New("occupancy data unavailable")
)
