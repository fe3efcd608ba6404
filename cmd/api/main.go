package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/api/middleware"
	"github.com/indietrack/artist-dashboard/internal/api/rest"
	"github.com/indietrack/artist-dashboard/internal/api/server"
	"github.com/indietrack/artist-dashboard/internal/config"
	"github.com/indietrack/artist-dashboard/internal/identity"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/messaging"
	"github.com/indietrack/artist-dashboard/internal/providers/jetstream"
	"github.com/indietrack/artist-dashboard/internal/release"
	"github.com/indietrack/artist-dashboard/internal/storage"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "artist-dashboard-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting artist dashboard API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.UseReadReplica(db, cfg.Database.ReadDSN()); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Routing reads to replica", zap.String("read_host", cfg.Database.ReadHost))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Identity.Timeout)

	cloudflareClient, err := adapter.NewCloudflareClient(cfg.Cloudflare.APIToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Cloudflare client", zap.Error(err))
	}

	// Activity events fan out over JetStream when a broker is configured
	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Publishing activity events", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, activity events will not be published")
	}
	defer publisher.Close()

	// Initialize identity provider and object storage
	identityProvider := identity.NewGoTrueClient(identity.Config{
		URL:            cfg.Identity.URL,
		AnonKey:        cfg.Identity.AnonKey,
		ServiceRoleKey: cfg.Identity.ServiceRoleKey,
		JWTSecret:      cfg.Auth.JWTSecret,
	}, httpClient, jsonAdapter, clock)

	assets := storage.NewCloudflareStorage(cloudflareClient, storage.Config{
		AccountID:     cfg.Cloudflare.AccountID,
		MaxUploadSize: cfg.Cloudflare.MaxUploadSize,
	}, clock)

	// Initialize services
	publicURL := strings.TrimRight(cfg.Server.PublicURL, "/")
	activitySvc := activity.NewService(dataStore, publisher, clock, jsonAdapter)
	releaseSvc := release.NewService(dataStore, activitySvc)
	analyticsSvc := analytics.NewService(dataStore, activitySvc, releaseSvc, clock)
	accountSvc := account.NewService(account.Config{
		EmailRedirectURL:         publicURL + "/auth/confirm-email",
		PasswordResetRedirectURL: publicURL + "/update-password",
	}, identityProvider, dataStore, activitySvc, assets)

	handler := rest.NewHandler(rest.Config{
		PublicURL:     publicURL,
		MaxUploadSize: cfg.Cloudflare.MaxUploadSize,
	}, accountSvc, releaseSvc, analyticsSvc, activitySvc)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowOrigins: cfg.Server.AllowOrigins,
		Auth: middleware.AuthConfig{
			APIKeys: cfg.Auth.APIKeys,
		},
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMinute: cfg.Auth.RequestsPerMinute,
			Burst:             cfg.Auth.Burst,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, handler, identityProvider)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
