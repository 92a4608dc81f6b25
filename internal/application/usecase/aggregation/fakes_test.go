package aggregation

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSubmissionRepo struct {
	submissions []*entity.Submission
	err         error
	batchSizes  []int
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *entity.Submission) error {
	r.submissions = append(r.submissions, s)
	return nil
}
func (r *fakeSubmissionRepo) Update(context.Context, *entity.Submission) error { return nil }
func (r *fakeSubmissionRepo) FindByID(context.Context, uuid.UUID) (*entity.Submission, error) {
	return nil, domainerror.ErrSubmissionNotFound
}
func (r *fakeSubmissionRepo) Count(context.Context) (int64, error) {
	return int64(len(r.submissions)), nil
}
func (r *fakeSubmissionRepo) ForEachBatch(_ context.Context, batchSize int, fn func([]*entity.Submission) error) error {
	if r.err != nil {
		return r.err
	}
	r.batchSizes = append(r.batchSizes, batchSize)

	ordered := make([]*entity.Submission, len(r.submissions))
	copy(ordered, r.submissions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID.String() < ordered[j].ID.String() })

	for start := 0; start < len(ordered); start += batchSize {
		end := start + batchSize
		if end > len(ordered) {
			end = len(ordered)
		}
		if err := fn(ordered[start:end]); err != nil {
			return err
		}
	}
	return nil
}

type fakeCache struct {
	result     *aggregate.Result
	getErr     error
	generation int64
	sets       int
	stale      int
	gets       int
	invalid    int

	// onGeneration runs after the generation is read, simulating a write
	// that lands while the aggregate is being computed.
	onGeneration func()
}

func (c *fakeCache) Get(context.Context) (*aggregate.Result, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.result, c.result != nil, nil
}
func (c *fakeCache) Generation(context.Context) (int64, error) {
	generation := c.generation
	if c.onGeneration != nil {
		c.onGeneration()
	}
	return generation, nil
}
func (c *fakeCache) Set(_ context.Context, r *aggregate.Result, generation int64) (bool, error) {
	if generation != c.generation {
		c.stale++
		return false, nil
	}
	c.sets++
	c.result = r
	return true, nil
}
func (c *fakeCache) Invalidate(context.Context) error {
	c.invalid++
	c.generation++
	c.result = nil
	return nil
}
func (c *fakeCache) Ping(context.Context) error { return nil }

type fakeSnapshotRepo struct {
	snapshots []*aggregate.Snapshot
	err       error
}

func (r *fakeSnapshotRepo) Create(_ context.Context, s *aggregate.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.snapshots = append(r.snapshots, s)
	return nil
}

func (r *fakeSnapshotRepo) FindLatest(context.Context) (*aggregate.Snapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.snapshots) == 0 {
		return nil, domainerror.ErrSnapshotNotFound
	}
	return r.snapshots[len(r.snapshots)-1], nil
}

var errDatabaseDown = errors.New("database down")

func submission(month int, f entity.ColorFamily, updated time.Time) *entity.Submission {
	s := &entity.Submission{ID: uuid.New(), CreatedAt: updated, UpdatedAt: updated}
	s.Months[month] = &entity.ColorValue{Hex: f.Representative(), Family: f}
	return s
}
