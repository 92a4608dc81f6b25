package dto

import (
	"strconv"
	"time"

	"github.com/color3/backend/internal/domain/aggregate"
)

// FamilyCountResponse represents one family's share of a slot.
type FamilyCountResponse struct {
	Family     string `json:"family"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ConsensusResponse represents the agreement metrics of a slot.
type ConsensusResponse struct {
	Status            string  `json:"status"`
	TopShare          float64 `json:"top_share"`
	NormalizedEntropy float64 `json:"normalized_entropy"`
	TotalCount        int     `json:"total_count"`
}

// SlotWithConsensusResponse represents a slot's counts together with its consensus.
type SlotWithConsensusResponse struct {
	Counts    []FamilyCountResponse `json:"counts"`
	Consensus ConsensusResponse     `json:"consensus"`
}

// AggregateResponse represents population statistics keyed by slot index.
// Slot values are []FamilyCountResponse, or SlotWithConsensusResponse when consensus was requested.
type AggregateResponse struct {
	TotalSubmissions int                    `json:"total_submissions"`
	Months           map[string]interface{} `json:"months"`
	DaysOfWeek       map[string]interface{} `json:"days_of_week"`
	DaysOfMonth      map[string]interface{} `json:"days_of_month"`
}

// SnapshotResponse represents a stored aggregate snapshot.
type SnapshotResponse struct {
	ID               string            `json:"id"`
	ComputedAt       time.Time         `json:"computed_at"`
	TotalSubmissions int               `json:"total_submissions"`
	InputsHash       string            `json:"inputs_hash"`
	Created          *bool             `json:"created,omitempty"`
	Aggregate        AggregateResponse `json:"aggregate"`
}

// ToAggregateResponse converts an aggregate result to a response DTO.
// When consensus is nil, slots carry plain count lists.
func ToAggregateResponse(r *aggregate.Result, consensus *aggregate.ResultConsensus) AggregateResponse {
	resp := AggregateResponse{
		TotalSubmissions: r.TotalSubmissions,
		Months:           make(map[string]interface{}, len(r.Months)),
		DaysOfWeek:       make(map[string]interface{}, len(r.DaysOfWeek)),
		DaysOfMonth:      make(map[string]interface{}, len(r.DaysOfMonth)),
	}

	for i, counts := range r.Months {
		resp.Months[strconv.Itoa(i)] = slotValue(counts, consensus, func(c *aggregate.ResultConsensus) aggregate.ConsensusMetrics { return c.Months[i] })
	}
	for i, counts := range r.DaysOfWeek {
		resp.DaysOfWeek[strconv.Itoa(i)] = slotValue(counts, consensus, func(c *aggregate.ResultConsensus) aggregate.ConsensusMetrics { return c.DaysOfWeek[i] })
	}
	for i, counts := range r.DaysOfMonth {
		resp.DaysOfMonth[strconv.Itoa(i+1)] = slotValue(counts, consensus, func(c *aggregate.ResultConsensus) aggregate.ConsensusMetrics { return c.DaysOfMonth[i] })
	}

	return resp
}

// ToSnapshotResponse converts a snapshot to a response DTO.
func ToSnapshotResponse(s *aggregate.Snapshot, created *bool) SnapshotResponse {
	return SnapshotResponse{
		ID:               s.ID.String(),
		ComputedAt:       s.ComputedAt,
		TotalSubmissions: s.TotalSubmissions,
		InputsHash:       s.InputsHash,
		Created:          created,
		Aggregate:        ToAggregateResponse(s.Result, nil),
	}
}

func slotValue(counts []aggregate.FamilyCount, consensus *aggregate.ResultConsensus, pick func(*aggregate.ResultConsensus) aggregate.ConsensusMetrics) interface{} {
	list := toFamilyCountResponses(counts)
	if consensus == nil {
		return list
	}

	m := pick(consensus)
	return SlotWithConsensusResponse{
		Counts: list,
		Consensus: ConsensusResponse{
			Status:            string(m.Status),
			TopShare:          m.TopShare,
			NormalizedEntropy: m.NormalizedEntropy,
			TotalCount:        m.TotalCount,
		},
	}
}

func toFamilyCountResponses(counts []aggregate.FamilyCount) []FamilyCountResponse {
	out := make([]FamilyCountResponse, len(counts))
	for i, c := range counts {
		out[i] = FamilyCountResponse{
			Family:     string(c.Family),
			Count:      c.Count,
			Percentage: c.Percentage,
		}
	}
	return out
}
