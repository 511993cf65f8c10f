package get_occupancy_trends

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDataUnavailable возвращается, когда данные о номерах или бронированиях недоступны
	ErrDataUnavailable = errors.New("occupancy data unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
