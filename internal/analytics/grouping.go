package analytics

import (
	"sort"
	"time"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/domain"
)

// GroupByCalendarMonth groups records by the YYYY-MM label of dateOf(record) in loc.
// Returns the groups and their labels in ascending order.
func GroupByCalendarMonth[T any](records []T, dateOf func(T) time.Time, loc *time.Location) (map[string][]T, []string) {
	groups := make(map[string][]T)
	for _, r := range records {
		label := dateOf(r).In(loc).Format(domain.MonthFormat)
		groups[label] = append(groups[label], r)
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return groups, labels
}

// MonthRange returns consecutive month periods ending with the month containing ref
func MonthRange(ref time.Time, months int) []domain.Period {
	if months <= 0 {
		return nil
	}

	first := time.Date(ref.Year(), ref.Month()-time.Month(months-1), 1, 0, 0, 0, 0, ref.Location())
	periods := make([]domain.Period, 0, months)
	for i := 0; i < months; i++ {
		periods = append(periods, domain.MonthPeriod(first.AddDate(0, i, 0)))
	}
	return periods
}
