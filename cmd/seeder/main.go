package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/config"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/messaging"
	"github.com/indietrack/artist-dashboard/internal/release"
	"github.com/indietrack/artist-dashboard/internal/seeder"
	"github.com/indietrack/artist-dashboard/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSeederConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Cancel the run on interrupt; already seeded profiles stay seeded
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "artist-dashboard-seeder",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()

	// Seeded activity rows are inserted directly and publish no events
	activitySvc := activity.NewService(dataStore, messaging.NopPublisher{}, clock, adapter.NewJSON())
	releaseSvc := release.NewService(dataStore, activitySvc)
	analyticsSvc := analytics.NewService(dataStore, activitySvc, releaseSvc, clock)

	s := seeder.New(seeder.Config{
		BatchSize:      cfg.BatchSize,
		WorkerPoolSize: cfg.Worker.WorkerPoolSize,
	}, dataStore, analyticsSvc)

	summary, err := s.Run(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Analytics seeding failed", zap.Error(err), zap.String("seeder", s.Name()))
	}

	logger.Info("Analytics seeding complete",
		zap.Int("profiles", summary.Profiles),
		zap.Int("seeded", summary.Seeded),
		zap.Int("failed", summary.Failed),
	)
}
