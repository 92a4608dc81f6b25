package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/aggregate"
)

// AggregateSnapshotModel represents the aggregate_snapshots table in the database.
type AggregateSnapshotModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComputedAt       time.Time `gorm:"not null;index"`
	TotalSubmissions int       `gorm:"not null"`
	InputsHash       string    `gorm:"type:varchar(64);not null;index"`
	PayloadJSON      string    `gorm:"column:payload_json;type:text;not null"`
}

// TableName returns the table name for the AggregateSnapshotModel.
func (AggregateSnapshotModel) TableName() string {
	return "aggregate_snapshots"
}

// ToEntity converts an AggregateSnapshotModel to a domain Snapshot.
func (m *AggregateSnapshotModel) ToEntity() (*aggregate.Snapshot, error) {
	var payload AggregatePayload
	if err := json.Unmarshal([]byte(m.PayloadJSON), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s payload: %w", m.ID, err)
	}

	return &aggregate.Snapshot{
		ID:               m.ID,
		ComputedAt:       m.ComputedAt,
		TotalSubmissions: m.TotalSubmissions,
		InputsHash:       m.InputsHash,
		Result:           payload.ToResult(),
	}, nil
}

// AggregateSnapshotFromEntity creates an AggregateSnapshotModel from a domain Snapshot.
func AggregateSnapshotFromEntity(s *aggregate.Snapshot) (*AggregateSnapshotModel, error) {
	data, err := json.Marshal(AggregatePayloadFromResult(s.Result))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	return &AggregateSnapshotModel{
		ID:               s.ID,
		ComputedAt:       s.ComputedAt,
		TotalSubmissions: s.TotalSubmissions,
		InputsHash:       s.InputsHash,
		PayloadJSON:      string(data),
	}, nil
}
