// Package aggregation contains population statistics use cases.
package aggregation

import (
	"context"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

// DefaultBatchSize is used when a non-positive batch size is configured.
const DefaultBatchSize = 500

// collect streams every stored submission through an Aggregator and a Fingerprint.
func collect(ctx context.Context, repo adapter.SubmissionRepository, batchSize int) (*aggregate.Result, string, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var agg aggregate.Aggregator
	fp := aggregate.NewFingerprint()

	err := repo.ForEachBatch(ctx, batchSize, func(batch []*entity.Submission) error {
		for _, s := range batch {
			agg.Add(s)
			fp.Add(s)
		}
		return nil
	})
	if err != nil {
		return nil, "", domainerror.NewAggregateError(
			domainerror.ErrCodeAggregateInternalError,
			"failed to read submissions",
			err,
		)
	}

	return agg.Result(), fp.Sum(), nil
}
