package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/color3/backend/internal/application/usecase/submission"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

// SubmissionRequest represents the request body for creating or replacing a submission.
// Entries are kept raw so each one can be checked for null or object shape.
type SubmissionRequest struct {
	Months      []json.RawMessage `json:"months"`
	DaysOfMonth []json.RawMessage `json:"days_of_month"`
	DaysOfWeek  []json.RawMessage `json:"days_of_week"`
}

// ColorValueRequest represents a single submitted color.
type ColorValueRequest struct {
	Hex    *string `json:"hex"`
	Family *string `json:"family,omitempty"`
}

// ColorValueResponse represents a stored color.
type ColorValueResponse struct {
	Hex    string `json:"hex"`
	Family string `json:"family"`
}

// SubmissionWriteResponse represents the response for creating or replacing a submission.
type SubmissionWriteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SubmissionResponse represents a stored submission.
type SubmissionResponse struct {
	ID          string                `json:"id"`
	Months      []*ColorValueResponse `json:"months"`
	DaysOfMonth []*ColorValueResponse `json:"days_of_month"`
	DaysOfWeek  []*ColorValueResponse `json:"days_of_week"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ToMappingInput converts the request into use case input.
func (r *SubmissionRequest) ToMappingInput() (submission.MappingInput, error) {
	if r.Months == nil || r.DaysOfMonth == nil || r.DaysOfWeek == nil {
		return submission.MappingInput{}, domainerror.NewSubmissionError(
			domainerror.ErrCodeInvalidSubmissionPayload,
			"months, days_of_month and days_of_week must be arrays",
			domainerror.ErrInvalidSubmissionPayload,
		)
	}

	months, err := parseColorEntries(r.Months, "months")
	if err != nil {
		return submission.MappingInput{}, err
	}
	daysOfMonth, err := parseColorEntries(r.DaysOfMonth, "days_of_month")
	if err != nil {
		return submission.MappingInput{}, err
	}
	daysOfWeek, err := parseColorEntries(r.DaysOfWeek, "days_of_week")
	if err != nil {
		return submission.MappingInput{}, err
	}

	return submission.MappingInput{
		Months:      months,
		DaysOfMonth: daysOfMonth,
		DaysOfWeek:  daysOfWeek,
	}, nil
}

var jsonNull = []byte("null")

func parseColorEntries(raw []json.RawMessage, field string) ([]*submission.ColorInput, error) {
	out := make([]*submission.ColorInput, len(raw))
	for i, entry := range raw {
		trimmed := bytes.TrimSpace(entry)
		if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
			continue
		}

		var value ColorValueRequest
		if trimmed[0] != '{' || json.Unmarshal(trimmed, &value) != nil {
			return nil, domainerror.NewSubmissionError(
				domainerror.ErrCodeInvalidColorValue,
				fmt.Sprintf("%s[%d] must be null or an object with a hex string", field, i),
				domainerror.ErrInvalidColorValue,
			)
		}

		in := &submission.ColorInput{Family: value.Family}
		if value.Hex != nil {
			in.Hex = *value.Hex
		}
		out[i] = in
	}
	return out, nil
}

// ToSubmissionWriteResponse converts a stored submission to a write response.
func ToSubmissionWriteResponse(s *entity.Submission) SubmissionWriteResponse {
	return SubmissionWriteResponse{
		Success: true,
		ID:      s.ID.String(),
	}
}

// ToSubmissionResponse converts a domain Submission entity to a SubmissionResponse DTO.
func ToSubmissionResponse(s *entity.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID.String(),
		Months:      toColorValueResponses(s.Months[:]),
		DaysOfMonth: toColorValueResponses(s.DaysOfMonth[:]),
		DaysOfWeek:  toColorValueResponses(s.DaysOfWeek[:]),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toColorValueResponses(values []*entity.ColorValue) []*ColorValueResponse {
	out := make([]*ColorValueResponse, len(values))
	for i, v := range values {
		if v != nil {
			out[i] = &ColorValueResponse{Hex: v.Hex, Family: string(v.Family)}
		}
	}
	return out
}
