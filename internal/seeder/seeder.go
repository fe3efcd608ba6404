package seeder

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/store"
)

const (
	defaultBatchSize      = 200
	defaultWorkerPoolSize = 8
)

// Config holds configuration for the analytics seeder
type Config struct {
	BatchSize      int // Profiles fetched per page
	WorkerPoolSize int // Concurrent seeding workers
}

// Summary reports the outcome of a seeding run
type Summary struct {
	Profiles int   // Profiles visited
	Seeded   int   // Profiles that received at least one row
	Rows     int64 // Rows inserted across all collections
	Failed   int   // Profiles whose seeding failed
}

// Seeder back-fills the default analytics dataset for existing profiles
//
//go:generate mockgen -source=seeder.go -destination=../mocks/seeder.go -package=mocks -mock_names=Seeder=MockSeeder
type Seeder interface {
	// Run walks every profile once and seeds the empty collections.
	// A failure on one profile is logged and counted; the run continues.
	Run(ctx context.Context) (*Summary, error)

	// Name returns the seeder's name for logging and identification
	Name() string
}

type seeder struct {
	config    Config
	store     store.Store
	analytics analytics.Service
}

// New creates a new analytics seeder
func New(cfg Config, st store.Store, analyticsSvc analytics.Service) Seeder {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	return &seeder{
		config:    cfg,
		store:     st,
		analytics: analyticsSvc,
	}
}

func (s *seeder) Name() string {
	return "analytics-seeder"
}

func (s *seeder) Run(ctx context.Context) (*Summary, error) {
	logger.InfoCtx(ctx, "Starting analytics seeder",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	var (
		summary Summary
		seeded  atomic.Int64
		rows    atomic.Int64
		failed  atomic.Int64
		after   = uuid.Nil
	)

	for {
		if err := ctx.Err(); err != nil {
			return s.finish(&summary, &seeded, &rows, &failed), err
		}

		ids, err := s.store.ListProfileIDs(ctx, after, s.config.BatchSize)
		if err != nil {
			return s.finish(&summary, &seeded, &rows, &failed), fmt.Errorf("failed to list profiles after %s: %w", after, err)
		}
		if len(ids) == 0 {
			break
		}

		group := pool.NewGroup()
		for _, id := range ids {
			group.Submit(func() {
				result, err := s.analytics.SeedIfAbsent(ctx, id)
				if err != nil {
					failed.Add(1)
					if !errors.Is(err, context.Canceled) {
						logger.ErrorCtx(ctx, err, zap.String("userID", id.String()))
					}
					return
				}
				if n := result.Total(); n > 0 {
					seeded.Add(1)
					rows.Add(n)
				}
			})
		}
		if err := group.Wait(); err != nil {
			return s.finish(&summary, &seeded, &rows, &failed), fmt.Errorf("seeding batch failed: %w", err)
		}

		summary.Profiles += len(ids)
		after = ids[len(ids)-1]

		logger.DebugCtx(ctx, "Seeded profile batch",
			zap.Int("profiles", summary.Profiles),
			zap.String("after", after.String()),
		)

		if len(ids) < s.config.BatchSize {
			break
		}
	}

	s.finish(&summary, &seeded, &rows, &failed)
	logger.InfoCtx(ctx, "Analytics seeder finished",
		zap.Int("profiles", summary.Profiles),
		zap.Int("seeded", summary.Seeded),
		zap.Int64("rows", summary.Rows),
		zap.Int("failed", summary.Failed),
	)
	return &summary, nil
}

// finish copies the worker counters into the summary
func (s *seeder) finish(summary *Summary, seeded, rows, failed *atomic.Int64) *Summary {
	summary.Seeded = int(seeded.Load())
	summary.Rows = rows.Load()
	summary.Failed = int(failed.Load())
	return summary
}
