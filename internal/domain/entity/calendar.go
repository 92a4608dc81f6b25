package entity

import "time"

// Unit slot counts.
const (
	MonthsPerYear = 12
	DaysPerMonth  = 31
	DaysPerWeek   = 7
)

// MonthName returns the English name for a 0-based month index, or "" when out of range.
func MonthName(index int) string {
	if index < 0 || index >= MonthsPerYear {
		return ""
	}
	return time.Month(index + 1).String()
}

// DayOfWeekName returns the English name for a day-of-week index (0 = Sunday), or "" when out of range.
func DayOfWeekName(index int) string {
	if index < 0 || index >= DaysPerWeek {
		return ""
	}
	return time.Weekday(index).String()
}
