package domain

import "time"

// Period calendar interval [Start, End], End is the last instant of the last day
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the calendar month containing t, in t's location
func MonthPeriod(t time.Time) Period {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// NextMonthPeriod returns the calendar month following the one containing t
func NextMonthPeriod(t time.Time) Period {
	return MonthPeriod(time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()))
}

// EndExclusive returns the first instant after the period
func (p Period) EndExclusive() time.Time {
	return p.End.Add(time.Nanosecond)
}

// YearEarlier returns the same calendar month one year earlier
func (p Period) YearEarlier() Period {
	return MonthPeriod(p.Start.AddDate(-1, 0, 0))
}

// Days returns the number of calendar days in the period
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

// Label returns the month label of the period start (YYYY-MM)
func (p Period) Label() string {
	return p.Start.Format(MonthFormat)
}

// DaysUntilStart returns whole calendar days from ref to the period start, never negative
func (p Period) DaysUntilStart(ref time.Time) int {
	days := DaysBetween(ref.In(p.Start.Location()), p.Start)
	if days < 0 {
		return 0
	}
	return days
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days between the dates of from and to.
// Computed on civil dates so DST shifts do not affect the result.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// CivilDateIn converts t to loc. A UTC midnight is treated as a date without
// time and becomes midnight of the same calendar day in loc.
func CivilDateIn(t time.Time, loc *time.Location) time.Time {
	if t.Location() == time.UTC && t.Equal(t.Truncate(24*time.Hour)) {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	return t.In(loc)
}
