package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/api/middleware"
	"github.com/indietrack/artist-dashboard/internal/api/rest"
	"github.com/indietrack/artist-dashboard/internal/logger"
)

// rateLimitCleanupInterval is how often idle per-client limiters are evicted
const rateLimitCleanupInterval = time.Minute

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins []string
	Auth         middleware.AuthConfig
	RateLimit    middleware.RateLimitConfig
}

// Server wraps the HTTP server
type Server struct {
	config      Config
	handler     rest.Handler
	verifier    middleware.SessionVerifier
	rateLimiter *middleware.RateLimiter
	httpServer  *http.Server
	stopCleanup context.CancelFunc
}

// New creates a new API server
func New(cfg Config, handler rest.Handler, verifier middleware.SessionVerifier) *Server {
	return &Server{
		config:      cfg,
		handler:     handler,
		verifier:    verifier,
		rateLimiter: middleware.NewRateLimiter(cfg.RateLimit),
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS(s.config.AllowOrigins))

	rest.SetupRoutes(router, s.handler, rest.RoutesConfig{
		Verifier:    s.verifier,
		Auth:        s.config.Auth,
		RateLimiter: s.rateLimiter,
	})

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	cleanupCtx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	s.rateLimiter.StartCleanup(cleanupCtx, rateLimitCleanupInterval)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.stopCleanup != nil {
		s.stopCleanup()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
