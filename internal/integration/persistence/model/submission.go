// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/entity"
)

// ColorValueJSON is the stored form of one array entry.
type ColorValueJSON struct {
	Hex    string `json:"hex"`
	Family string `json:"family"`
}

// SubmissionModel represents the submissions table in the database.
// Each array is stored as a JSON list of objects or nulls.
type SubmissionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	MonthsJSON      string    `gorm:"column:months_json;type:text;not null"`
	DaysOfMonthJSON string    `gorm:"column:days_of_month_json;type:text;not null"`
	DaysOfWeekJSON  string    `gorm:"column:days_of_week_json;type:text;not null"`
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the SubmissionModel.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// ToEntity converts a SubmissionModel to a domain Submission entity.
func (m *SubmissionModel) ToEntity() *entity.Submission {
	s := &entity.Submission{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	decodeColors(m.MonthsJSON, s.Months[:], m.ID, "months")
	decodeColors(m.DaysOfMonthJSON, s.DaysOfMonth[:], m.ID, "days_of_month")
	decodeColors(m.DaysOfWeekJSON, s.DaysOfWeek[:], m.ID, "days_of_week")
	return s
}

// SubmissionFromEntity creates a SubmissionModel from a domain Submission entity.
func SubmissionFromEntity(s *entity.Submission) *SubmissionModel {
	return &SubmissionModel{
		ID:              s.ID,
		MonthsJSON:      encodeColors(s.Months[:], s.ID),
		DaysOfMonthJSON: encodeColors(s.DaysOfMonth[:], s.ID),
		DaysOfWeekJSON:  encodeColors(s.DaysOfWeek[:], s.ID),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func encodeColors(values []*entity.ColorValue, id uuid.UUID) string {
	out := make([]*ColorValueJSON, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = &ColorValueJSON{Hex: v.Hex, Family: string(v.Family)}
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		slog.Error("Failed to marshal submission colors", "error", err, "submission_id", id)
		return "[]"
	}
	return string(data)
}

// decodeColors fills dst from raw. Extra entries are ignored; missing ones stay nil.
func decodeColors(raw string, dst []*entity.ColorValue, id uuid.UUID, field string) {
	if raw == "" {
		return
	}

	var values []*ColorValueJSON
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		slog.Warn("Failed to unmarshal submission colors", "error", err, "submission_id", id, "field", field)
		return
	}

	for i, v := range values {
		if i >= len(dst) {
			break
		}
		if v != nil {
			dst[i] = &entity.ColorValue{Hex: v.Hex, Family: entity.ColorFamily(v.Family)}
		}
	}
}
