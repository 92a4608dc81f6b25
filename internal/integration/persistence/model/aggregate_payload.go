package model

import (
	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
)

// FamilyCountJSON is the serialized form of aggregate.FamilyCount.
type FamilyCountJSON struct {
	Family     string `json:"family"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// AggregatePayload is the serialized form of aggregate.Result shared by
// snapshots and the aggregate cache.
type AggregatePayload struct {
	TotalSubmissions int                 `json:"total_submissions"`
	Months           [][]FamilyCountJSON `json:"months"`
	DaysOfMonth      [][]FamilyCountJSON `json:"days_of_month"`
	DaysOfWeek       [][]FamilyCountJSON `json:"days_of_week"`
}

// AggregatePayloadFromResult converts a result into its serialized form.
func AggregatePayloadFromResult(r *aggregate.Result) *AggregatePayload {
	return &AggregatePayload{
		TotalSubmissions: r.TotalSubmissions,
		Months:           encodeSlots(r.Months[:]),
		DaysOfMonth:      encodeSlots(r.DaysOfMonth[:]),
		DaysOfWeek:       encodeSlots(r.DaysOfWeek[:]),
	}
}

// ToResult converts the payload back into a result. Missing slots are left empty.
func (p *AggregatePayload) ToResult() *aggregate.Result {
	r := &aggregate.Result{TotalSubmissions: p.TotalSubmissions}
	decodeSlots(p.Months, r.Months[:])
	decodeSlots(p.DaysOfMonth, r.DaysOfMonth[:])
	decodeSlots(p.DaysOfWeek, r.DaysOfWeek[:])
	return r
}

func encodeSlots(slots [][]aggregate.FamilyCount) [][]FamilyCountJSON {
	out := make([][]FamilyCountJSON, len(slots))
	for i, counts := range slots {
		out[i] = make([]FamilyCountJSON, len(counts))
		for j, c := range counts {
			out[i][j] = FamilyCountJSON{
				Family:     string(c.Family),
				Count:      c.Count,
				Percentage: c.Percentage,
			}
		}
	}
	return out
}

func decodeSlots(src [][]FamilyCountJSON, dst [][]aggregate.FamilyCount) {
	for i := range dst {
		counts := make([]aggregate.FamilyCount, 0)
		if i < len(src) {
			for _, c := range src[i] {
				counts = append(counts, aggregate.FamilyCount{
					Family:     entity.ColorFamily(c.Family),
					Count:      c.Count,
					Percentage: c.Percentage,
				})
			}
		}
		dst[i] = counts
	}
}
