package entity

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/color3/backend/internal/domain/error"
)

func TestUnitMapping_SetBounds(t *testing.T) {
	var m UnitMapping

	tests := []struct {
		name string
		set  func() error
		err  error
	}{
		{"first month", func() error { return m.SetMonth(0, ColorFamilyRed) }, nil},
		{"last month", func() error { return m.SetMonth(11, ColorFamilyRed) }, nil},
		{"month 12", func() error { return m.SetMonth(12, ColorFamilyRed) }, domainerror.ErrSlotOutOfRange},
		{"negative month", func() error { return m.SetMonth(-1, ColorFamilyRed) }, domainerror.ErrSlotOutOfRange},
		{"day 1", func() error { return m.SetDayOfMonth(1, ColorFamilyRed) }, nil},
		{"day 31", func() error { return m.SetDayOfMonth(31, ColorFamilyRed) }, nil},
		{"day 0", func() error { return m.SetDayOfMonth(0, ColorFamilyRed) }, domainerror.ErrSlotOutOfRange},
		{"day 32", func() error { return m.SetDayOfMonth(32, ColorFamilyRed) }, domainerror.ErrSlotOutOfRange},
		{"sunday", func() error { return m.SetDayOfWeek(0, ColorFamilyRed) }, nil},
		{"saturday", func() error { return m.SetDayOfWeek(6, ColorFamilyRed) }, nil},
		{"weekday 7", func() error { return m.SetDayOfWeek(7, ColorFamilyRed) }, domainerror.ErrSlotOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set(); !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestUnitMapping_Lookups(t *testing.T) {
	var m UnitMapping
	_ = m.SetMonth(9, ColorFamilyOrange)
	_ = m.SetDayOfMonth(31, ColorFamilyBlack)
	_ = m.SetDayOfWeek(int(time.Friday), ColorFamilyPurple)

	if f, ok := m.MonthFamily(time.October); !ok || f != ColorFamilyOrange {
		t.Errorf("MonthFamily(October) = %q, %v", f, ok)
	}
	if _, ok := m.MonthFamily(time.November); ok {
		t.Error("November should be unmapped")
	}
	if f, ok := m.DayOfMonthFamily(31); !ok || f != ColorFamilyBlack {
		t.Errorf("DayOfMonthFamily(31) = %q, %v", f, ok)
	}
	if _, ok := m.DayOfMonthFamily(32); ok {
		t.Error("day 32 must not resolve")
	}
	if f, ok := m.DayOfWeekFamily(time.Friday); !ok || f != ColorFamilyPurple {
		t.Errorf("DayOfWeekFamily(Friday) = %q, %v", f, ok)
	}
	if m.MappedCount() != 3 {
		t.Errorf("MappedCount() = %d, expected 3", m.MappedCount())
	}
	if m.IsComplete() {
		t.Error("mapping with 3 slots must not be complete")
	}
}

func TestUnitMapping_IsComplete(t *testing.T) {
	var m UnitMapping
	for i := 0; i < MonthsPerYear; i++ {
		_ = m.SetMonth(i, ColorFamilyBlue)
	}
	for d := 1; d <= DaysPerMonth; d++ {
		_ = m.SetDayOfMonth(d, ColorFamilyBlue)
	}
	for w := 0; w < DaysPerWeek; w++ {
		_ = m.SetDayOfWeek(w, ColorFamilyBlue)
	}

	if !m.IsComplete() {
		t.Error("expected complete mapping")
	}
	if m.MappedCount() != 50 {
		t.Errorf("MappedCount() = %d, expected 50", m.MappedCount())
	}
}

func TestCalendarNames(t *testing.T) {
	if MonthName(0) != "January" || MonthName(11) != "December" || MonthName(12) != "" {
		t.Error("unexpected month names")
	}
	if DayOfWeekName(0) != "Sunday" || DayOfWeekName(6) != "Saturday" || DayOfWeekName(-1) != "" {
		t.Error("unexpected weekday names")
	}
}
