// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/color3/backend/config"
	"github.com/color3/backend/internal/application/adapter"
	"github.com/color3/backend/internal/application/usecase/aggregation"
	"github.com/color3/backend/internal/application/usecase/color"
	"github.com/color3/backend/internal/application/usecase/submission"
	tricolorday "github.com/color3/backend/internal/application/usecase/tricolor_day"
	"github.com/color3/backend/internal/infra/server/router"
	"github.com/color3/backend/internal/integration/adapters"
	"github.com/color3/backend/internal/integration/cache"
	"github.com/color3/backend/internal/integration/entrypoint/controller"
	"github.com/color3/backend/internal/integration/entrypoint/middleware"
	"github.com/color3/backend/internal/integration/persistence"
	"github.com/color3/backend/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	DB             *gorm.DB
	Router         *router.Router
	RateLimiter    *middleware.RateLimiter
	SnapshotWorker *worker.SnapshotWorker

	// CreateSubmission is exposed for the seed command.
	CreateSubmission *submission.CreateSubmissionUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// A nil redisClient disables the aggregate cache; health still reports the
// cache as disconnected when Redis is enabled in cfg.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	return NewInjectorWithClock(cfg, db, redisClient, dbHealthChecker, adapters.NewSystemClock())
}

// NewInjectorWithClock is NewInjector with an explicit time source.
func NewInjectorWithClock(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool, clock adapter.Clock) *Injector {
	// Create repositories
	submissionRepo := persistence.NewSubmissionRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)

	// Create adapters
	aggregateCache := newAggregateCache(cfg, redisClient)
	horizon := tricolorday.HorizonPolicy{
		DefaultMonths: cfg.Aggregate.DefaultHorizonMonths,
		MaxMonths:     cfg.Aggregate.MaxHorizonMonths,
	}

	// Create color use cases
	listFamiliesUseCase := color.NewListFamiliesUseCase()
	classifyColorUseCase := color.NewClassifyColorUseCase()

	// Create submission use cases
	createSubmissionUseCase := submission.NewCreateSubmissionUseCase(submissionRepo, aggregateCache, clock)
	updateSubmissionUseCase := submission.NewUpdateSubmissionUseCase(submissionRepo, aggregateCache, clock)
	getSubmissionUseCase := submission.NewGetSubmissionUseCase(submissionRepo)

	// Create tri-color day use cases
	findTriColorDaysUseCase := tricolorday.NewFindTriColorDaysUseCase(horizon, clock)
	personalTriColorDaysUseCase := tricolorday.NewGetPersonalTriColorDaysUseCase(submissionRepo, horizon, clock)

	// Create aggregation use cases
	getAggregateUseCase := aggregation.NewGetAggregateUseCase(submissionRepo, aggregateCache, cfg.Aggregate.BatchSize)
	communityTriColorDaysUseCase := aggregation.NewGetCommunityTriColorDaysUseCase(getAggregateUseCase, horizon, clock)
	createSnapshotUseCase := aggregation.NewCreateSnapshotUseCase(submissionRepo, snapshotRepo, clock, cfg.Aggregate.BatchSize)
	getLatestSnapshotUseCase := aggregation.NewGetLatestSnapshotUseCase(snapshotRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, newCacheHealthChecker(cfg, redisClient, aggregateCache))
	colorController := controller.NewColorController(listFamiliesUseCase, classifyColorUseCase)
	submissionController := controller.NewSubmissionController(
		createSubmissionUseCase,
		updateSubmissionUseCase,
		getSubmissionUseCase,
		personalTriColorDaysUseCase,
	)
	triColorController := controller.NewTriColorController(findTriColorDaysUseCase)
	aggregateController := controller.NewAggregateController(
		getAggregateUseCase,
		communityTriColorDaysUseCase,
		createSnapshotUseCase,
		getLatestSnapshotUseCase,
	)

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxSubmissions, cfg.RateLimit.Window)

	// Create router
	r := router.NewRouter(
		healthController,
		colorController,
		submissionController,
		triColorController,
		aggregateController,
		rateLimiter,
		cfg.CORS.FrontendURL,
	)

	var snapshotWorker *worker.SnapshotWorker
	if cfg.Snapshot.WorkerEnabled {
		snapshotWorker = worker.NewSnapshotWorker(createSnapshotUseCase, worker.SnapshotWorkerConfig{
			Interval: cfg.Snapshot.Interval,
		})
	}

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		RateLimiter:      rateLimiter,
		SnapshotWorker:   snapshotWorker,
		CreateSubmission: createSubmissionUseCase,
	}
}

// newCacheHealthChecker returns nil when Redis is disabled in config, so health
// reports "disabled". When Redis is enabled but no client could be created the
// checker always fails and health reports "disconnected".
func newCacheHealthChecker(cfg *config.Config, redisClient *redis.Client, aggregateCache adapter.AggregateCache) func() bool {
	if !cfg.Redis.Enabled {
		return nil
	}
	if redisClient == nil {
		return func() bool { return false }
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return aggregateCache.Ping(ctx) == nil
	}
}

func newAggregateCache(cfg *config.Config, redisClient *redis.Client) adapter.AggregateCache {
	if redisClient == nil {
		slog.Info("Aggregate cache disabled")
		return cache.NewNoopAggregateCache()
	}
	return cache.NewRedisAggregateCache(redisClient, cfg.Aggregate.CacheTTL)
}
