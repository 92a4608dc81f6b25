package aggregate

import (
	"testing"

	"github.com/color3/backend/internal/domain/entity"
)

func counts(pairs ...interface{}) []FamilyCount {
	var out []FamilyCount
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, FamilyCount{Family: pairs[i].(entity.ColorFamily), Count: pairs[i+1].(int)})
	}
	return out
}

func TestConsensus(t *testing.T) {
	tests := []struct {
		name     string
		counts   []FamilyCount
		expected ConsensusMetrics
	}{
		{
			name:   "six to four is strong agreement",
			counts: counts(entity.ColorFamilyRed, 6, entity.ColorFamilyBlue, 4),
			expected: ConsensusMetrics{
				Status: ConsensusStrong, TopShare: 0.6, NormalizedEntropy: 0.28, TotalCount: 10,
			},
		},
		{
			name:   "nine observations is not enough",
			counts: counts(entity.ColorFamilyRed, 9),
			expected: ConsensusMetrics{
				Status: ConsensusNotEnoughData, TotalCount: 9,
			},
		},
		{
			name:   "spread over many families regardless of shape",
			counts: counts(entity.ColorFamilyRed, 2, entity.ColorFamilyBlue, 2, entity.ColorFamilyGreen, 2, entity.ColorFamilyCyan, 2, entity.ColorFamilyPink, 1),
			expected: ConsensusMetrics{
				Status: ConsensusNotEnoughData, TotalCount: 9,
			},
		},
		{
			name:   "five families evenly is no consensus",
			counts: counts(entity.ColorFamilyRed, 2, entity.ColorFamilyBlue, 2, entity.ColorFamilyGreen, 2, entity.ColorFamilyCyan, 2, entity.ColorFamilyPink, 2),
			expected: ConsensusMetrics{
				Status: ConsensusNone, TopShare: 0.2, NormalizedEntropy: 0.67, TotalCount: 10,
			},
		},
		{
			name:   "dominant but spread is mixed",
			counts: counts(entity.ColorFamilyRed, 11, entity.ColorFamilyBlue, 5, entity.ColorFamilyGreen, 4),
			expected: ConsensusMetrics{
				Status: ConsensusMixed, TopShare: 0.55, NormalizedEntropy: 0.42, TotalCount: 20,
			},
		},
		{
			name:   "even split of two is mixed",
			counts: counts(entity.ColorFamilyRed, 5, entity.ColorFamilyBlue, 5),
			expected: ConsensusMetrics{
				Status: ConsensusMixed, TopShare: 0.5, NormalizedEntropy: 0.29, TotalCount: 10,
			},
		},
		{
			name:   "unanimous",
			counts: counts(entity.ColorFamilyGray, 12),
			expected: ConsensusMetrics{
				Status: ConsensusStrong, TopShare: 1, NormalizedEntropy: 0, TotalCount: 12,
			},
		},
		{
			name:     "empty slot",
			counts:   nil,
			expected: ConsensusMetrics{Status: ConsensusNotEnoughData},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Consensus(tt.counts)
			if got != tt.expected {
				t.Errorf("Consensus() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestConsensusForResult(t *testing.T) {
	var subs []*entity.Submission
	for i := 0; i < 10; i++ {
		subs = append(subs, submissionWithJanuary(entity.ColorFamilyBlue))
	}

	c := ConsensusForResult(Aggregate(subs))
	if c.Months[0].Status != ConsensusStrong {
		t.Errorf("January status = %q, expected %q", c.Months[0].Status, ConsensusStrong)
	}
	if c.Months[1].Status != ConsensusNotEnoughData {
		t.Errorf("February status = %q, expected %q", c.Months[1].Status, ConsensusNotEnoughData)
	}
}
