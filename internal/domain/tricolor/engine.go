// Package tricolor finds the calendar days on which a mapping's month,
// day-of-month and day-of-week all share one color family.
package tricolor

import (
	"time"

	"github.com/color3/backend/internal/domain/entity"
)

// DateLayout is the ISO calendar date format used for match dates.
const DateLayout = "2006-01-02"

// Match is a single tri-color day.
type Match struct {
	Date       time.Time
	Family     entity.ColorFamily
	Month      int // 0-based
	DayOfMonth int // 1-based
	DayOfWeek  int // 0 = Sunday
}

// ISODate returns the match date as YYYY-MM-DD.
func (m Match) ISODate() string {
	return m.Date.Format(DateLayout)
}

// Window is the half-open date range searched for matches.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the window starting on the first day of ref's month
// and spanning horizonMonths calendar months.
func NewWindow(ref time.Time, horizonMonths int) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(0, horizonMonths, 0),
	}
}

// FindMatches returns every tri-color day in the window starting this month.
func FindMatches(m *entity.UnitMapping, horizonMonths int) []Match {
	return FindMatchesAt(m, horizonMonths, time.Now())
}

// FindMatchesAt is FindMatches with an explicit reference time.
// Matches are ordered by ascending date. A horizon below one month yields no matches.
func FindMatchesAt(m *entity.UnitMapping, horizonMonths int, ref time.Time) []Match {
	matches := make([]Match, 0)
	if m == nil || horizonMonths <= 0 {
		return matches
	}

	w := NewWindow(ref, horizonMonths)
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		if match, ok := matchDay(m, d); ok {
			matches = append(matches, match)
		}
	}

	return matches
}

func matchDay(m *entity.UnitMapping, d time.Time) (Match, bool) {
	monthFamily, ok := m.MonthFamily(d.Month())
	if !ok {
		return Match{}, false
	}
	dayFamily, ok := m.DayOfMonthFamily(d.Day())
	if !ok || dayFamily != monthFamily {
		return Match{}, false
	}
	weekdayFamily, ok := m.DayOfWeekFamily(d.Weekday())
	if !ok || weekdayFamily != monthFamily {
		return Match{}, false
	}

	return Match{
		Date:       d,
		Family:     monthFamily,
		Month:      int(d.Month()) - 1,
		DayOfMonth: d.Day(),
		DayOfWeek:  int(d.Weekday()),
	}, true
}

// DaysInMonth returns the matching days-of-month that fall in year/month, ascending.
func DaysInMonth(matches []Match, year int, month time.Month) []int {
	days := make([]int, 0)
	for _, m := range matches {
		if m.Date.Year() == year && m.Date.Month() == month {
			days = append(days, m.DayOfMonth)
		}
	}
	return days
}

// GroupByMonth buckets match days by "YYYY-MM".
func GroupByMonth(matches []Match) map[string][]int {
	grouped := make(map[string][]int)
	for _, m := range matches {
		key := m.Date.Format("2006-01")
		grouped[key] = append(grouped[key], m.DayOfMonth)
	}
	return grouped
}
