package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indietrack/artist-dashboard/internal/account"
	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/release"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Register creates an account
	// POST /auth/register
	Register(c *gin.Context)

	// Login exchanges credentials for a session
	// POST /auth/login
	Login(c *gin.Context)

	// Logout revokes the current session
	// POST /auth/logout
	Logout(c *gin.Context)

	// CheckSession reports whether the bearer token is a live session
	// GET /auth/check-session
	CheckSession(c *gin.Context)

	// ConfirmEmail verifies the emailed token and redirects to the web app
	// GET /auth/confirm-email?token=<token>&type=email_confirmation
	ConfirmEmail(c *gin.Context)

	// ResetPassword sends a password recovery email
	// POST /auth/reset-password
	ResetPassword(c *gin.Context)

	// UpdatePassword changes the password of the session user (requires session)
	// POST /auth/update-password
	UpdatePassword(c *gin.Context)

	// DeleteAccount removes the session user and all owned data (requires session)
	// POST /auth/delete-account
	DeleteAccount(c *gin.Context)

	// UpdateNotifications stores the email notification switches (requires session)
	// POST /auth/update-notifications
	UpdateNotifications(c *gin.Context)

	// GetProfile returns the artist profile
	// GET /api/v1/profile
	GetProfile(c *gin.Context)

	// UpdateProfile applies profile changes
	// PUT /api/v1/profile
	UpdateProfile(c *gin.Context)

	// SetupProfile completes the profile after registration
	// POST /api/v1/profile/setup
	SetupProfile(c *gin.Context)

	// GetDashboard returns stats, activity and recent releases, seeding default analytics on first visit
	// GET /api/v1/dashboard
	GetDashboard(c *gin.Context)

	// GetAnalytics returns the analytics breakdowns and the monthly stream timeline
	// GET /api/v1/analytics?months=<months>
	GetAnalytics(c *gin.Context)

	// ListActivities returns the newest activity entries
	// GET /api/v1/activity?limit=<limit>
	ListActivities(c *gin.Context)

	// ListReleases returns the artist's releases, newest first
	// GET /api/v1/releases
	ListReleases(c *gin.Context)

	// CreateRelease creates a release
	// POST /api/v1/releases
	CreateRelease(c *gin.Context)

	// GetRelease returns a release with its tracks
	// GET /api/v1/releases/:id
	GetRelease(c *gin.Context)

	// UpdateRelease applies release changes, enforcing the status transition table
	// PATCH /api/v1/releases/:id
	UpdateRelease(c *gin.Context)

	// ListTracks returns the tracks of a release
	// GET /api/v1/releases/:id/tracks
	ListTracks(c *gin.Context)

	// CreateTrack adds a track to a release
	// POST /api/v1/releases/:id/tracks
	CreateTrack(c *gin.Context)

	// GetReleaseStreams returns the per-platform streaming summary of a release
	// GET /api/v1/releases/:id/streams
	GetReleaseStreams(c *gin.Context)

	// GetLicenseAgreement returns the license agreement
	// GET /api/v1/license-agreement
	GetLicenseAgreement(c *gin.Context)

	// SaveLicenseAgreement creates or replaces the license agreement
	// PUT /api/v1/license-agreement
	SaveLicenseAgreement(c *gin.Context)

	// UploadAsset stores an uploaded image (multipart field "file")
	// POST /api/v1/uploads/:kind
	UploadAsset(c *gin.Context)

	// ApplyModeration records the review decision for a release (requires API key)
	// POST /internal/v1/releases/:id/moderation
	ApplyModeration(c *gin.Context)

	// UpdateDistribution records the distribution state of a release (requires API key)
	// POST /internal/v1/releases/:id/distribution
	UpdateDistribution(c *gin.Context)

	// IngestStreams stores reported daily stream counts for a release (requires API key)
	// POST /internal/v1/releases/:id/streams
	IngestStreams(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Config holds the handler configuration
type Config struct {
	// PublicURL is the base URL of the web app that email links redirect to
	PublicURL string
	// MaxUploadSize caps the multipart body of uploads in bytes
	MaxUploadSize int64
}

// handler implements the Handler interface
type handler struct {
	cfg       Config
	accounts  account.Service
	releases  release.Service
	analytics analytics.Service
	activity  activity.Service
}

// NewHandler creates a new REST API handler
func NewHandler(cfg Config, accounts account.Service, releases release.Service, analyticsSvc analytics.Service, activitySvc activity.Service) Handler {
	return &handler{
		cfg:       cfg,
		accounts:  accounts,
		releases:  releases,
		analytics: analyticsSvc,
		activity:  activitySvc,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "artist-dashboard-api",
	})
}
