package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/indietrack/artist-dashboard/internal/api/middleware"
	"github.com/indietrack/artist-dashboard/internal/metrics"
)

// RoutesConfig holds the collaborators the route table needs
type RoutesConfig struct {
	Verifier    middleware.SessionVerifier
	Auth        middleware.AuthConfig
	RateLimiter *middleware.RateLimiter
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RoutesConfig) {
	useJSONFieldNames()

	// Health check and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := router.Group("/auth")
	if cfg.RateLimiter != nil {
		auth.Use(cfg.RateLimiter.Handler())
	}
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.GET("/check-session", handler.CheckSession)
		auth.GET("/confirm-email", handler.ConfirmEmail)
		auth.POST("/reset-password", handler.ResetPassword)

		session := auth.Group("", middleware.SessionAuth(cfg.Verifier))
		session.POST("/logout", handler.Logout)
		session.POST("/update-password", handler.UpdatePassword)
		session.POST("/delete-account", handler.DeleteAccount)
		session.POST("/update-notifications", handler.UpdateNotifications)
	}

	// Artist routes (session required)
	v1 := router.Group("/api/v1", middleware.SessionAuth(cfg.Verifier))
	{
		v1.GET("/dashboard", handler.GetDashboard)
		v1.GET("/analytics", handler.GetAnalytics)
		v1.GET("/activity", handler.ListActivities)

		v1.GET("/profile", handler.GetProfile)
		v1.PUT("/profile", handler.UpdateProfile)
		v1.POST("/profile/setup", handler.SetupProfile)

		v1.GET("/releases", handler.ListReleases)
		v1.POST("/releases", handler.CreateRelease)
		v1.GET("/releases/:id", handler.GetRelease)
		v1.PATCH("/releases/:id", handler.UpdateRelease)
		v1.GET("/releases/:id/tracks", handler.ListTracks)
		v1.POST("/releases/:id/tracks", handler.CreateTrack)
		v1.GET("/releases/:id/streams", handler.GetReleaseStreams)

		v1.GET("/license-agreement", handler.GetLicenseAgreement)
		v1.PUT("/license-agreement", handler.SaveLicenseAgreement)

		v1.POST("/uploads/:kind", handler.UploadAsset)
	}

	// Back-office routes (API key required)
	internal := router.Group("/internal/v1", middleware.APIKeyAuth(cfg.Auth))
	{
		internal.POST("/releases/:id/moderation", handler.ApplyModeration)
		internal.POST("/releases/:id/distribution", handler.UpdateDistribution)
		internal.POST("/releases/:id/streams", handler.IngestStreams)
	}
}
