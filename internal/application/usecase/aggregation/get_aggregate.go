package aggregation

import (
	"context"
	"log/slog"

	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/domain/aggregate"
)

// GetAggregateInput represents the input for reading population statistics.
type GetAggregateInput struct {
	IncludeConsensus bool
}

// GetAggregateOutput represents the population statistics.
type GetAggregateOutput struct {
	Result    *aggregate.Result
	Consensus *aggregate.ResultConsensus
	FromCache bool
}

// GetAggregateUseCase handles computing, caching and labelling the aggregate.
type GetAggregateUseCase struct {
	submissionRepo adapter.SubmissionRepository
	aggregateCache adapter.AggregateCache
	batchSize      int
}

// NewGetAggregateUseCase creates a new GetAggregateUseCase instance.
func NewGetAggregateUseCase(
	submissionRepo adapter.SubmissionRepository,
	aggregateCache adapter.AggregateCache,
	batchSize int,
) *GetAggregateUseCase {
	return &GetAggregateUseCase{
		submissionRepo: submissionRepo,
		aggregateCache: aggregateCache,
		batchSize:      batchSize,
	}
}

// Execute returns the cached aggregate when present, otherwise computes and caches it.
// Cache failures are logged and never fail the request. A result is only cached
// when no write invalidated the cache while it was being computed.
func (uc *GetAggregateUseCase) Execute(ctx context.Context, input GetAggregateInput) (*GetAggregateOutput, error) {
	result, fromCache := uc.fromCache(ctx)

	if result == nil {
		generation, cacheable := uc.generation(ctx)

		computed, _, err := collect(ctx, uc.submissionRepo, uc.batchSize)
		if err != nil {
			return nil, err
		}
		result = computed

		if cacheable {
			stored, err := uc.aggregateCache.Set(ctx, result, generation)
			switch {
			case err != nil:
				slog.Warn("Failed to cache aggregate", "error", err)
			case !stored:
				slog.Debug("Discarded aggregate computed before an invalidation", "generation", generation)
			}
		}
	}

	out := &GetAggregateOutput{
		Result:    result,
		FromCache: fromCache,
	}
	if input.IncludeConsensus {
		consensus := aggregate.ConsensusForResult(result)
		out.Consensus = &consensus
	}

	return out, nil
}

func (uc *GetAggregateUseCase) generation(ctx context.Context) (int64, bool) {
	if uc.aggregateCache == nil {
		return 0, false
	}

	generation, err := uc.aggregateCache.Generation(ctx)
	if err != nil {
		slog.Warn("Failed to read aggregate cache generation", "error", err)
		return 0, false
	}

	return generation, true
}

func (uc *GetAggregateUseCase) fromCache(ctx context.Context) (*aggregate.Result, bool) {
	if uc.aggregateCache == nil {
		return nil, false
	}

	result, ok, err := uc.aggregateCache.Get(ctx)
	if err != nil {
		slog.Warn("Failed to read aggregate cache", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	return result, true
}
