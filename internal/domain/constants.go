package domain

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Forecast constants
const (
	DefaultPaceWindowDays = 30
	MinReferenceYear      = 1970
	MaxReferenceYear      = 9998
)

// Trend analysis constants
const (
	DefaultTrendMonths = 12
	MaxTrendMonths     = 36
)
