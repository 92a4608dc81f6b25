package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/color3/backend/internal/application/usecase/submission"
	"github.com/color3/backend/internal/domain/entity"
)

func TestGenerator_MappingShape(t *testing.T) {
	g := newGenerator(42)

	for i := 0; i < 20; i++ {
		m := g.mapping()
		if len(m.Months) != entity.MonthsPerYear {
			t.Fatalf("expected %d months, got %d", entity.MonthsPerYear, len(m.Months))
		}
		if len(m.DaysOfMonth) != entity.DaysPerMonth {
			t.Fatalf("expected %d days of month, got %d", entity.DaysPerMonth, len(m.DaysOfMonth))
		}
		if len(m.DaysOfWeek) != entity.DaysPerWeek {
			t.Fatalf("expected %d days of week, got %d", entity.DaysPerWeek, len(m.DaysOfWeek))
		}

		for _, slots := range [][]*submission.ColorInput{m.Months, m.DaysOfMonth, m.DaysOfWeek} {
			for _, c := range slots {
				if c != nil && !entity.IsValidHex(c.Hex) {
					t.Errorf("generated invalid hex %q", c.Hex)
				}
			}
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := newGenerator(7).mapping()
	b := newGenerator(7).mapping()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different mappings (-a +b):\n%s", diff)
	}
}

func TestGenerator_PickRespectsWeights(t *testing.T) {
	g := newGenerator(1)

	tests := []struct {
		name    string
		weights []weight
		allowed map[entity.ColorFamily]bool
	}{
		{
			name:    "single weight always wins",
			weights: []weight{{entity.ColorFamilyOrange, 1}},
			allowed: map[entity.ColorFamily]bool{entity.ColorFamilyOrange: true},
		},
		{
			name:    "only weighted families are picked",
			weights: monthPatterns[9],
			allowed: map[entity.ColorFamily]bool{
				entity.ColorFamilyOrange: true,
				entity.ColorFamilyBlack:  true,
				entity.ColorFamilyPurple: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				if f := g.pick(tt.weights); !tt.allowed[f] {
					t.Fatalf("picked unexpected family %q", f)
				}
			}
		})
	}
}

func TestGenerator_UniformPickIsValid(t *testing.T) {
	g := newGenerator(3)
	for i := 0; i < 200; i++ {
		if f := g.pick(nil); !f.IsValid() {
			t.Fatalf("picked invalid family %q", f)
		}
	}
}

type recordingCreator struct {
	calls  int
	failAt int
}

func (r *recordingCreator) Execute(_ context.Context, _ submission.CreateSubmissionInput) (*submission.CreateSubmissionOutput, error) {
	r.calls++
	if r.calls == r.failAt {
		return nil, errors.New("boom")
	}
	return &submission.CreateSubmissionOutput{}, nil
}

func TestSeedSubmissions(t *testing.T) {
	creator := &recordingCreator{}
	if err := seedSubmissions(context.Background(), creator, newGenerator(1), 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creator.calls != 25 {
		t.Errorf("expected 25 creations, got %d", creator.calls)
	}

	failing := &recordingCreator{failAt: 3}
	if err := seedSubmissions(context.Background(), failing, newGenerator(1), 10); err == nil {
		t.Error("expected error to be propagated")
	}
	if failing.calls != 3 {
		t.Errorf("expected seeding to stop after the failure, got %d calls", failing.calls)
	}
}
