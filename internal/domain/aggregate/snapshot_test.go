package aggregate

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/entity"
)

func TestFingerprint(t *testing.T) {
	base := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	a := &entity.Submission{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), UpdatedAt: base}
	b := &entity.Submission{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), UpdatedAt: base}

	sum := func(subs ...*entity.Submission) string {
		f := NewFingerprint()
		for _, s := range subs {
			f.Add(s)
		}
		return f.Sum()
	}

	if sum(a, b) != sum(a, b) {
		t.Error("fingerprint must be deterministic")
	}
	if len(sum()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(sum()))
	}
	if sum(a, b) == sum(a) {
		t.Error("adding a submission must change the fingerprint")
	}

	edited := *b
	edited.UpdatedAt = base.Add(time.Second)
	if sum(a, b) == sum(a, &edited) {
		t.Error("updating a submission must change the fingerprint")
	}
}

func TestNewSnapshot(t *testing.T) {
	r := Aggregate([]*entity.Submission{submissionWithJanuary(entity.ColorFamilyRed)})
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	s := NewSnapshot(r, "abc", now)
	if s.TotalSubmissions != 1 || s.InputsHash != "abc" || s.Result != r {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if s.ComputedAt.Location() != time.UTC || !s.ComputedAt.Equal(now) {
		t.Errorf("ComputedAt = %v, expected %v in UTC", s.ComputedAt, now)
	}
	if s.ID == uuid.Nil {
		t.Error("snapshot ID must be set")
	}
}
