package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

func TestSubmissionRequest_ToMappingInput(t *testing.T) {
	body := `{
		"months": [null, {"hex": "#ff0000"}, {"hex": "#16A34A", "family": "green"}],
		"days_of_month": [],
		"days_of_week": [ null ]
	}`

	var req SubmissionRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("failed to decode request: %v", err)
	}

	input, err := req.ToMappingInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(input.Months) != 3 || input.Months[0] != nil {
		t.Fatalf("expected 3 months with a leading null, got %+v", input.Months)
	}
	if input.Months[1].Hex != "#ff0000" || input.Months[1].Family != nil {
		t.Errorf("unexpected months[1]: %+v", input.Months[1])
	}
	if input.Months[2].Family == nil || *input.Months[2].Family != "green" {
		t.Errorf("expected family hint on months[2], got %+v", input.Months[2])
	}
	if len(input.DaysOfMonth) != 0 || len(input.DaysOfWeek) != 1 || input.DaysOfWeek[0] != nil {
		t.Errorf("unexpected day arrays: %+v %+v", input.DaysOfMonth, input.DaysOfWeek)
	}
}

func TestSubmissionRequest_ToMappingInputErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode domainerror.SubmissionErrorCode
	}{
		{"missing field", `{"months": [], "days_of_week": []}`, domainerror.ErrCodeInvalidSubmissionPayload},
		{"string entry", `{"months": ["#FF0000"], "days_of_month": [], "days_of_week": []}`, domainerror.ErrCodeInvalidColorValue},
		{"array entry", `{"months": [], "days_of_month": [[1]], "days_of_week": []}`, domainerror.ErrCodeInvalidColorValue},
		{"hex of wrong type", `{"months": [], "days_of_month": [], "days_of_week": [{"hex": 12}]}`, domainerror.ErrCodeInvalidColorValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SubmissionRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}

			_, err := req.ToMappingInput()
			var subErr *domainerror.SubmissionError
			if !errors.As(err, &subErr) {
				t.Fatalf("expected SubmissionError, got %v", err)
			}
			if subErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, subErr.Code)
			}
		})
	}
}

func TestParseSlotKeys(t *testing.T) {
	got, err := ParseSlotKeys(map[string]string{"0": "red", "11": "blue"}, "months")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[int]string{0: "red", 11: "blue"}, got); diff != "" {
		t.Errorf("ParseSlotKeys mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseSlotKeys(map[string]string{"jan": "red"}, "months")
	if !errors.Is(err, domainerror.ErrSlotOutOfRange) {
		t.Errorf("expected ErrSlotOutOfRange, got %v", err)
	}
}

func TestToAggregateResponse(t *testing.T) {
	red := "#DC2626"
	sub := &entity.Submission{}
	sub.Months[0] = &entity.ColorValue{Hex: red, Family: entity.ColorFamilyRed}
	sub.DaysOfMonth[0] = &entity.ColorValue{Hex: red, Family: entity.ColorFamilyRed}

	result := aggregate.Aggregate([]*entity.Submission{sub})

	plain := ToAggregateResponse(result, nil)
	if len(plain.Months) != 12 || len(plain.DaysOfWeek) != 7 || len(plain.DaysOfMonth) != 31 {
		t.Fatalf("unexpected slot counts: %d %d %d", len(plain.Months), len(plain.DaysOfWeek), len(plain.DaysOfMonth))
	}
	if _, ok := plain.DaysOfMonth["0"]; ok {
		t.Error("days of month must be keyed from 1")
	}

	want := []FamilyCountResponse{{Family: "red", Count: 1, Percentage: 100}}
	if diff := cmp.Diff(want, plain.DaysOfMonth["1"]); diff != "" {
		t.Errorf("days_of_month[1] mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]FamilyCountResponse{}, plain.Months["1"]); diff != "" {
		t.Errorf("empty slot mismatch (-want +got):\n%s", diff)
	}

	consensus := aggregate.ConsensusForResult(result)
	withConsensus := ToAggregateResponse(result, &consensus)
	slot, ok := withConsensus.Months["0"].(SlotWithConsensusResponse)
	if !ok {
		t.Fatalf("expected SlotWithConsensusResponse, got %T", withConsensus.Months["0"])
	}
	if slot.Consensus.Status != string(aggregate.ConsensusNotEnoughData) || slot.Consensus.TotalCount != 1 {
		t.Errorf("unexpected consensus %+v", slot.Consensus)
	}
}
