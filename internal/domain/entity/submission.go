package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one participant's color mapping over the three calendar units.
// Entries are optional; arrays always have their full length.
type Submission struct {
	ID          uuid.UUID
	Months      [MonthsPerYear]*ColorValue
	DaysOfMonth [DaysPerMonth]*ColorValue
	DaysOfWeek  [DaysPerWeek]*ColorValue
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSubmission creates a new Submission entity.
func NewSubmission(months [MonthsPerYear]*ColorValue, daysOfMonth [DaysPerMonth]*ColorValue, daysOfWeek [DaysPerWeek]*ColorValue, now time.Time) *Submission {
	now = now.UTC()

	return &Submission{
		ID:          uuid.New(),
		Months:      months,
		DaysOfMonth: daysOfMonth,
		DaysOfWeek:  daysOfWeek,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Replace overwrites all three arrays in place and bumps UpdatedAt.
func (s *Submission) Replace(months [MonthsPerYear]*ColorValue, daysOfMonth [DaysPerMonth]*ColorValue, daysOfWeek [DaysPerWeek]*ColorValue, now time.Time) {
	s.Months = months
	s.DaysOfMonth = daysOfMonth
	s.DaysOfWeek = daysOfWeek
	s.UpdatedAt = now.UTC()
}

// Mapping projects the submission onto its families.
func (s *Submission) Mapping() UnitMapping {
	var m UnitMapping
	for i, v := range s.Months {
		if v != nil {
			m.Months[i] = familyPtr(v.Family)
		}
	}
	for i, v := range s.DaysOfMonth {
		if v != nil {
			m.DaysOfMonth[i] = familyPtr(v.Family)
		}
	}
	for i, v := range s.DaysOfWeek {
		if v != nil {
			m.DaysOfWeek[i] = familyPtr(v.Family)
		}
	}
	return m
}
