package aggregate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/color3/backend/internal/domain/entity"
	"github.com/color3/backend/internal/domain/valueobject"
)

// ConsensusStatus labels how strongly a slot's submissions agree.
type ConsensusStatus string

const (
	ConsensusStrong        ConsensusStatus = "Strong agreement"
	ConsensusNone          ConsensusStatus = "No consensus"
	ConsensusMixed         ConsensusStatus = "Mixed"
	ConsensusNotEnoughData ConsensusStatus = "Not enough data"
)

// ConsensusMetrics describes the agreement within one slot.
// TopShare and NormalizedEntropy are rounded to two decimals.
type ConsensusMetrics struct {
	Status            ConsensusStatus
	TopShare          float64
	NormalizedEntropy float64
	TotalCount        int
}

var maxEntropy = math.Log(entity.ColorFamilyCount)

// Consensus labels a slot using the default thresholds.
func Consensus(counts []FamilyCount) ConsensusMetrics {
	return ConsensusWith(counts, valueobject.DefaultConsensusThresholds())
}

// ConsensusWith labels a slot using t. Classification runs on the rounded metrics.
func ConsensusWith(counts []FamilyCount, t valueobject.ConsensusThresholds) ConsensusMetrics {
	total := SlotTotal(counts)
	if total < t.MinSample {
		return ConsensusMetrics{Status: ConsensusNotEnoughData, TotalCount: total}
	}

	maxCount := 0
	entropy := 0.0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
		if c.Count > 0 {
			p := float64(c.Count) / float64(total)
			entropy -= p * math.Log(p)
		}
	}

	topShare := decimal.NewFromInt(int64(maxCount)).Div(decimal.NewFromInt(int64(total))).Round(2)
	normalized := decimal.NewFromFloat(entropy / maxEntropy).Round(2)

	status := ConsensusMixed
	switch {
	case t.IsStrong(normalized, topShare):
		status = ConsensusStrong
	case t.IsWeak(normalized, topShare):
		status = ConsensusNone
	}

	return ConsensusMetrics{
		Status:            status,
		TopShare:          topShare.InexactFloat64(),
		NormalizedEntropy: normalized.InexactFloat64(),
		TotalCount:        total,
	}
}

// ResultConsensus holds consensus metrics for all 50 slots.
type ResultConsensus struct {
	Months      [entity.MonthsPerYear]ConsensusMetrics
	DaysOfMonth [entity.DaysPerMonth]ConsensusMetrics
	DaysOfWeek  [entity.DaysPerWeek]ConsensusMetrics
}

// ConsensusForResult labels every slot of r.
func ConsensusForResult(r *Result) ResultConsensus {
	var c ResultConsensus
	for i := range r.Months {
		c.Months[i] = Consensus(r.Months[i])
	}
	for i := range r.DaysOfMonth {
		c.DaysOfMonth[i] = Consensus(r.DaysOfMonth[i])
	}
	for i := range r.DaysOfWeek {
		c.DaysOfWeek[i] = Consensus(r.DaysOfWeek[i])
	}
	return c
}
