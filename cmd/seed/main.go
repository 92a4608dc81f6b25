// Package main is the entry point for the Color³ seed command.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/color3/backend/config"
	"github.com/color3/backend/internal/application/usecase/submission"
	infracache "github.com/color3/backend/internal/infra/cache"
	"github.com/color3/backend/internal/infra/db"
	"github.com/color3/backend/internal/integration/adapters"
	"github.com/color3/backend/internal/integration/cache"
	"github.com/color3/backend/internal/integration/persistence"
)

var (
	count int
	seed  uint64
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with generated submissions",
	Long: `Generates submissions that follow seasonal color tendencies
(blue winters, orange Octobers) with some slots left empty, and stores
them through the regular create-submission flow.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().IntVarP(&count, "count", "n", 50, "Number of submissions to generate")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: current time)")
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := config.Load()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		return err
	}

	aggregateCache := cache.NewNoopAggregateCache()
	if cfg.Redis.Enabled {
		client, err := infracache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, cached aggregate will expire on its own", "error", err)
		} else {
			defer client.Close()
			aggregateCache = cache.NewRedisAggregateCache(client, cfg.Aggregate.CacheTTL)
		}
	}

	repo := persistence.NewSubmissionRepository(database.DB())
	createUseCase := submission.NewCreateSubmissionUseCase(repo, aggregateCache, adapters.NewSystemClock())

	slog.Info("Generating submissions", "count", count, "seed", seed)
	if err := seedSubmissions(cmd.Context(), createUseCase, newGenerator(seed), count); err != nil {
		return err
	}

	total, err := repo.Count(cmd.Context())
	if err != nil {
		return err
	}
	slog.Info("Seeding completed", "created", count, "total_submissions", total)
	return nil
}

// submissionCreator is the slice of the create use case the seeder needs.
type submissionCreator interface {
	Execute(ctx context.Context, input submission.CreateSubmissionInput) (*submission.CreateSubmissionOutput, error)
}

func seedSubmissions(ctx context.Context, creator submissionCreator, gen *generator, n int) error {
	for i := 0; i < n; i++ {
		if _, err := creator.Execute(ctx, submission.CreateSubmissionInput{Mapping: gen.mapping()}); err != nil {
			return fmt.Errorf("failed to create submission %d: %w", i+1, err)
		}
		if (i+1)%10 == 0 {
			slog.Info("Submissions created", "progress", i+1, "count", n)
		}
	}
	return nil
}
