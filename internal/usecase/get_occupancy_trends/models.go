package get_occupancy_trends

import "time"

// Request модель запроса аналитики загрузки
type Request struct {
	ReferenceDate *time.Time // Последний месяц окна, nil означает текущий
	Months        int        // Длина окна в месяцах, 0 означает значение по умолчанию
}

// Response модель ответа с помесячной аналитикой
type Response struct {
	From   string       // Первый месяц окна (YYYY-MM)
	To     string       // Последний месяц окна (YYYY-MM)
	Months []MonthStats // Помесячная статистика в хронологическом порядке

	OccupancyTrend Trend // Тренд загрузки, %
	RevenueTrend   Trend // Тренд выручки

	Rooms RoomBreakdown
}

// MonthStats статистика за календарный месяц
type MonthStats struct {
	Month             string  // YYYY-MM
	Bookings          int     // Бронирования с заездом в месяце, кроме отмененных
	Revenue           float64 // Сумма подтвержденных и завершенных бронирований
	OccupancyRate     float64 // 0..100
	SmoothedOccupancy float64 // Экспоненциальное сглаживание загрузки
}

// Trend линейный тренд ряда и прогноз на следующий месяц
type Trend struct {
	Slope     float64 // Изменение за месяц
	Intercept float64
	NextMonth float64   // Значение прямой для месяца после окна
	Fitted    []float64 // Значения прямой по месяцам окна
}

// RoomBreakdown разбивка номеров по статусам и типам
type RoomBreakdown struct {
	Total    int
	ByStatus map[string]int
	ByType   map[string]int
}
