package dto

import (
	"fmt"
	"strconv"

	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
	"github.com/color3/backend/internal/domain/tricolor"
)

// TriColorDaysRequest represents an ad-hoc mapping keyed by slot index.
type TriColorDaysRequest struct {
	Months      map[string]string `json:"months"`
	DaysOfMonth map[string]string `json:"days_of_month"`
	DaysOfWeek  map[string]string `json:"days_of_week"`
	MonthsAhead *int              `json:"months_ahead,omitempty"`
}

// TriColorDayResponse represents a single tri-color day.
type TriColorDayResponse struct {
	Date          string `json:"date"`
	Family        string `json:"family"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	DayOfMonth    int    `json:"day_of_month"`
	DayOfWeek     int    `json:"day_of_week"`
	DayOfWeekName string `json:"day_of_week_name"`
}

// WindowResponse represents the searched date range; End is exclusive.
type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TriColorDaysResponse represents the result of a tri-color day search.
type TriColorDaysResponse struct {
	SubmissionID     string                `json:"submission_id,omitempty"`
	TotalSubmissions *int                  `json:"total_submissions,omitempty"`
	Window           WindowResponse        `json:"window"`
	Count            int                   `json:"count"`
	Days             []TriColorDayResponse `json:"days"`
	ByMonth          map[string][]int      `json:"by_month"`
	Mapping          *MappingResponse      `json:"mapping,omitempty"`
}

// MappingResponse represents a unit mapping keyed by slot index.
type MappingResponse struct {
	Months      map[string]string `json:"months"`
	DaysOfMonth map[string]string `json:"days_of_month"`
	DaysOfWeek  map[string]string `json:"days_of_week"`
}

// ParseSlotKeys converts string slot keys into integer indices.
func ParseSlotKeys(slots map[string]string, field string) (map[int]string, error) {
	out := make(map[int]string, len(slots))
	for key, family := range slots {
		index, err := strconv.Atoi(key)
		if err != nil {
			return nil, domainerror.NewTriColorError(
				domainerror.ErrCodeSlotOutOfRange,
				fmt.Sprintf("%s: slot key %q is not an integer", field, key),
				domainerror.ErrSlotOutOfRange,
			)
		}
		out[index] = family
	}
	return out, nil
}

// ToTriColorDaysResponse converts engine matches to a response DTO.
func ToTriColorDaysResponse(window tricolor.Window, matches []tricolor.Match) TriColorDaysResponse {
	days := make([]TriColorDayResponse, len(matches))
	for i, m := range matches {
		days[i] = TriColorDayResponse{
			Date:          m.ISODate(),
			Family:        string(m.Family),
			Month:         m.Month,
			MonthName:     entity.MonthName(m.Month),
			DayOfMonth:    m.DayOfMonth,
			DayOfWeek:     m.DayOfWeek,
			DayOfWeekName: entity.DayOfWeekName(m.DayOfWeek),
		}
	}

	return TriColorDaysResponse{
		Window: WindowResponse{
			Start: window.Start.Format(tricolor.DateLayout),
			End:   window.End.Format(tricolor.DateLayout),
		},
		Count:   len(matches),
		Days:    days,
		ByMonth: tricolor.GroupByMonth(matches),
	}
}

// ToMappingResponse converts a unit mapping to a response DTO. Unmapped slots are omitted.
func ToMappingResponse(m *entity.UnitMapping) *MappingResponse {
	return &MappingResponse{
		Months:      slotMap(m.Months[:], 0),
		DaysOfMonth: slotMap(m.DaysOfMonth[:], 1),
		DaysOfWeek:  slotMap(m.DaysOfWeek[:], 0),
	}
}

func slotMap(slots []*entity.ColorFamily, offset int) map[string]string {
	out := make(map[string]string)
	for i, f := range slots {
		if f != nil {
			out[strconv.Itoa(i+offset)] = string(*f)
		}
	}
	return out
}
