package entity

import (
	"time"

	domainerror "github.com/color3/backend/internal/domain/error"
)

// UnitMapping assigns an optional color family to every calendar slot.
// A nil entry means the slot has no opinion.
type UnitMapping struct {
	Months      [MonthsPerYear]*ColorFamily // index 0 = January
	DaysOfMonth [DaysPerMonth]*ColorFamily  // index 0 = day 1
	DaysOfWeek  [DaysPerWeek]*ColorFamily   // index 0 = Sunday
}

// SetMonth assigns family to a 0-based month index.
func (m *UnitMapping) SetMonth(index int, family ColorFamily) error {
	if index < 0 || index >= MonthsPerYear {
		return domainerror.ErrSlotOutOfRange
	}
	m.Months[index] = familyPtr(family)
	return nil
}

// SetDayOfMonth assigns family to a 1-based day of month.
func (m *UnitMapping) SetDayOfMonth(day int, family ColorFamily) error {
	if day < 1 || day > DaysPerMonth {
		return domainerror.ErrSlotOutOfRange
	}
	m.DaysOfMonth[day-1] = familyPtr(family)
	return nil
}

// SetDayOfWeek assigns family to a day-of-week index (0 = Sunday).
func (m *UnitMapping) SetDayOfWeek(index int, family ColorFamily) error {
	if index < 0 || index >= DaysPerWeek {
		return domainerror.ErrSlotOutOfRange
	}
	m.DaysOfWeek[index] = familyPtr(family)
	return nil
}

// MonthFamily returns the family mapped to month, if any.
func (m *UnitMapping) MonthFamily(month time.Month) (ColorFamily, bool) {
	return lookup(m.Months[:], int(month)-1)
}

// DayOfMonthFamily returns the family mapped to a 1-based day, if any.
func (m *UnitMapping) DayOfMonthFamily(day int) (ColorFamily, bool) {
	return lookup(m.DaysOfMonth[:], day-1)
}

// DayOfWeekFamily returns the family mapped to weekday, if any.
func (m *UnitMapping) DayOfWeekFamily(weekday time.Weekday) (ColorFamily, bool) {
	return lookup(m.DaysOfWeek[:], int(weekday))
}

// IsComplete reports whether all 50 slots are mapped.
func (m *UnitMapping) IsComplete() bool {
	for _, slots := range [][]*ColorFamily{m.Months[:], m.DaysOfMonth[:], m.DaysOfWeek[:]} {
		for _, f := range slots {
			if f == nil {
				return false
			}
		}
	}
	return true
}

// MappedCount returns how many slots carry a family.
func (m *UnitMapping) MappedCount() int {
	n := 0
	for _, slots := range [][]*ColorFamily{m.Months[:], m.DaysOfMonth[:], m.DaysOfWeek[:]} {
		for _, f := range slots {
			if f != nil {
				n++
			}
		}
	}
	return n
}

func lookup(slots []*ColorFamily, i int) (ColorFamily, bool) {
	if i < 0 || i >= len(slots) || slots[i] == nil {
		return "", false
	}
	return *slots[i], true
}

func familyPtr(f ColorFamily) *ColorFamily {
	return &f
}
