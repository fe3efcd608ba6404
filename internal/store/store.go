package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// ErrDuplicateTrackNumber is returned when a track number is already taken on the release
var ErrDuplicateTrackNumber = errors.New("track number already exists on release")

// ErrReleaseNotApproved is returned when an update would leave a published release without moderation approval
var ErrReleaseNotApproved = errors.New("published release requires moderation approval")

// ErrReleaseStatusChanged is returned when a guarded update finds the release in a different status than expected
var ErrReleaseStatusChanged = errors.New("release status changed since it was read")

// Store defines the interface for database operations.
// Every method that touches user data is scoped by the caller's user id;
// rows owned by someone else behave exactly like missing rows.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Profiles
	// =============================================================================

	// GetProfile retrieves a profile with its social links; nil when absent
	GetProfile(ctx context.Context, userID uuid.UUID) (*schema.Profile, error)
	// EnsureProfile inserts the profile unless one already exists and reports whether it was created
	EnsureProfile(ctx context.Context, profile *schema.Profile) (bool, error)
	// UpdateProfile applies the supplied fields; nil when the profile does not exist
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*schema.Profile, error)
	// ReplaceSocialLinks replaces all social links of a profile
	ReplaceSocialLinks(ctx context.Context, userID uuid.UUID, links []SocialLinkInput) error
	// ListProfileIDs returns profile ids greater than after, ordered ascending (keyset pagination)
	ListProfileIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)

	// =============================================================================
	// Releases and tracks
	// =============================================================================

	// CreateRelease inserts a release with pending moderation and not-started distribution
	CreateRelease(ctx context.Context, input CreateReleaseInput) (*schema.Release, error)
	// GetRelease retrieves a release owned by ownerID; nil when absent or not owned
	GetRelease(ctx context.Context, ownerID, releaseID uuid.UUID) (*schema.Release, error)
	// GetReleaseByID retrieves a release regardless of owner, for internal moderation flows
	GetReleaseByID(ctx context.Context, releaseID uuid.UUID) (*schema.Release, error)
	// ListReleases lists releases owned by ownerID, newest first; limit <= 0 returns all
	ListReleases(ctx context.Context, ownerID uuid.UUID, limit int) ([]schema.Release, error)
	// UpdateRelease updates a release owned by ownerID; nil when zero rows matched
	UpdateRelease(ctx context.Context, ownerID, releaseID uuid.UUID, fields UpdateReleaseFields) (*schema.Release, error)
	// UpdateReleaseReview updates a release regardless of owner, for moderation and distribution; nil when absent
	UpdateReleaseReview(ctx context.Context, releaseID uuid.UUID, fields UpdateReleaseFields) (*schema.Release, error)
	// CreateTrack inserts a track on a release owned by ownerID.
	// Returns domain.ErrNotFound when the release is absent or not owned and
	// ErrDuplicateTrackNumber when the track number is taken.
	CreateTrack(ctx context.Context, ownerID uuid.UUID, input CreateTrackInput) (*schema.Track, error)
	// ListTracks lists tracks of a release owned by ownerID ordered by track number
	ListTracks(ctx context.Context, ownerID, releaseID uuid.UUID) ([]schema.Track, error)

	// =============================================================================
	// Streaming stats
	// =============================================================================

	// CreateStreamingStats inserts ingested daily stream counts
	CreateStreamingStats(ctx context.Context, stats []schema.StreamingStat) error
	// GetReleaseStreamsByPlatform sums streams of an owned release per platform, highest first
	GetReleaseStreamsByPlatform(ctx context.Context, ownerID, releaseID uuid.UUID) ([]PlatformStreamTotal, error)
	// GetMonthlyStreams sums streams across all releases of ownerID per calendar month since the given day
	GetMonthlyStreams(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]MonthlyStreamTotal, error)

	// =============================================================================
	// Analytics snapshots
	// =============================================================================

	// GetDashboardStats retrieves the dashboard row, preferring the most recently updated one; nil when absent
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*schema.DashboardStats, error)
	// ListPlatformStats lists platform rows ordered by percentage descending
	ListPlatformStats(ctx context.Context, userID uuid.UUID) ([]schema.PlatformStats, error)
	// ListCountryStats lists country rows ordered by percentage descending
	ListCountryStats(ctx context.Context, userID uuid.UUID) ([]schema.CountryStats, error)
	// ListTrackStats lists leaderboard rows ordered by streams descending
	ListTrackStats(ctx context.Context, userID uuid.UUID) ([]schema.TrackStats, error)
	// SeedAnalytics inserts the given defaults into every collection that is currently empty.
	// Inserts ignore unique conflicts so concurrent calls provision exactly one dataset.
	// Returns domain.ErrNotFound when the user has no profile.
	SeedAnalytics(ctx context.Context, userID uuid.UUID, data SeedData) (SeedResult, error)

	// =============================================================================
	// Activity
	// =============================================================================

	// CreateActivity appends an activity entry
	CreateActivity(ctx context.Context, activity *schema.UserActivity) error
	// ListActivities lists activities newest first by activity time, falling back to creation time
	ListActivities(ctx context.Context, userID uuid.UUID, limit int) ([]schema.UserActivity, error)

	// =============================================================================
	// License agreement
	// =============================================================================

	// GetLicenseAgreement retrieves the agreement; nil when absent
	GetLicenseAgreement(ctx context.Context, userID uuid.UUID) (*schema.LicenseAgreement, error)
	// UpsertLicenseAgreement creates or replaces the agreement of agreement.UserID
	UpsertLicenseAgreement(ctx context.Context, agreement *schema.LicenseAgreement) (*schema.LicenseAgreement, error)

	// =============================================================================
	// Account
	// =============================================================================

	// DeleteUserData removes every row owned by userID in a single transaction
	DeleteUserData(ctx context.Context, userID uuid.UUID) error
}

// UpdateProfileInput holds the profile fields to change; nil fields are left untouched
type UpdateProfileInput struct {
	ArtistName      *string
	Bio             *string
	Genre           *string
	ProfileImageURL *string
}

// SocialLinkInput is a single social link
type SocialLinkInput struct {
	Platform string
	URL      string
}

// CreateReleaseInput represents the data required to create a release
type CreateReleaseInput struct {
	ArtistID    uuid.UUID
	Title       string
	ReleaseDate time.Time
	Status      domain.ReleaseStatus
	Genre       *string
	Description *string
	ReleaseType domain.ReleaseType
	CoverArtURL *string
}

// UpdateReleaseFields holds the release columns to change; nil fields are left untouched
type UpdateReleaseFields struct {
	Title              *string
	ReleaseDate        *time.Time
	Status             *domain.ReleaseStatus
	ModerationStatus   *domain.ModerationStatus
	DistributionStatus *domain.DistributionStatus
	Genre              *string
	Description        *string
	ReleaseType        *domain.ReleaseType
	CoverArtURL        *string
	UPC                *string

	// ExpectedStatus restricts the update to a release still in this status. It is a guard, not a column.
	ExpectedStatus *domain.ReleaseStatus
}

// Empty reports whether no field is set
func (f UpdateReleaseFields) Empty() bool {
	return len(f.columns()) == 0
}

func (f UpdateReleaseFields) columns() map[string]interface{} {
	updates := make(map[string]interface{})
	if f.Title != nil {
		updates["title"] = *f.Title
	}
	if f.ReleaseDate != nil {
		updates["release_date"] = datatypes.Date(*f.ReleaseDate)
	}
	if f.Status != nil {
		updates["status"] = *f.Status
	}
	if f.ModerationStatus != nil {
		updates["moderation_status"] = *f.ModerationStatus
	}
	if f.DistributionStatus != nil {
		updates["distribution_status"] = *f.DistributionStatus
	}
	if f.Genre != nil {
		updates["genre"] = *f.Genre
	}
	if f.Description != nil {
		updates["description"] = *f.Description
	}
	if f.ReleaseType != nil {
		updates["release_type"] = *f.ReleaseType
	}
	if f.CoverArtURL != nil {
		updates["cover_art_url"] = *f.CoverArtURL
	}
	if f.UPC != nil {
		updates["upc"] = *f.UPC
	}
	return updates
}

// CreateTrackInput represents the data required to add a track to a release
type CreateTrackInput struct {
	ReleaseID   uuid.UUID
	Title       string
	TrackNumber int
	Duration    *int
	AudioURL    *string
	ISRC        *string
}

// PlatformStreamTotal is the stream sum of a release on one platform
type PlatformStreamTotal struct {
	Platform string `gorm:"column:platform"`
	Streams  int64  `gorm:"column:streams"`
}

// MonthlyStreamTotal is the stream sum of one calendar month
type MonthlyStreamTotal struct {
	Month   time.Time `gorm:"column:month"`
	Streams int64     `gorm:"column:streams"`
}

// SeedData is the default analytics dataset provisioned for a new user
type SeedData struct {
	Dashboard  schema.DashboardStats
	Platforms  []schema.PlatformStats
	Countries  []schema.CountryStats
	Tracks     []schema.TrackStats
	Activities []schema.UserActivity
}

// SeedResult reports how many rows each collection received
type SeedResult struct {
	Dashboard  int64
	Platforms  int64
	Countries  int64
	Tracks     int64
	Activities int64
}

// Total returns the number of rows inserted across all collections
func (r SeedResult) Total() int64 {
	return r.Dashboard + r.Platforms + r.Countries + r.Tracks + r.Activities
}
