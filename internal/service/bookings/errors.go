package bookings

import "errors"

var (
	// ErrDataUnavailable возвращается, когда не сработал ни индексный запрос, ни полный просмотр
	ErrDataUnavailable = errors.New("bookings: data unavailable")
)
