package submission

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/color3/backend/internal/domain/aggregate"
	"github.com/color3/backend/internal/domain/entity"
	domainerror "github.com/color3/backend/internal/domain/error"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSubmissionRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]entity.Submission
	err     error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{records: make(map[uuid.UUID]entity.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records[s.ID] = *s
	return nil
}

func (r *fakeSubmissionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.records[id]
	if !ok {
		return nil, domainerror.ErrSubmissionNotFound
	}
	return &s, nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, s *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[s.ID]; !ok {
		return domainerror.ErrSubmissionNotFound
	}
	r.records[s.ID] = *s
	return nil
}

func (r *fakeSubmissionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.records)), nil
}

func (r *fakeSubmissionRepo) ForEachBatch(_ context.Context, _ int, fn func([]*entity.Submission) error) error {
	r.mu.Lock()
	batch := make([]*entity.Submission, 0, len(r.records))
	for _, s := range r.records {
		s := s
		batch = append(batch, &s)
	}
	r.mu.Unlock()
	return fn(batch)
}

type fakeCache struct {
	invalidations int
}

func (c *fakeCache) Get(context.Context) (*aggregate.Result, bool, error) { return nil, false, nil }
func (c *fakeCache) Generation(context.Context) (int64, error) { return 0, nil }
func (c *fakeCache) Set(context.Context, *aggregate.Result, int64) (bool, error) {
	return false, nil
}
func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidations++
	return nil
}
func (c *fakeCache) Ping(context.Context) error { return nil }
