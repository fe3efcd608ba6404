package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/metrics"
	"github.com/indietrack/artist-dashboard/internal/release"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

const (
	// DefaultMonths is the length of the monthly streams timeline
	DefaultMonths = 6
	// MaxMonths caps the monthly streams timeline
	MaxMonths = 24

	// shareTolerance is how far a percentage collection may drift from 100 before it is reported
	shareTolerance = 1.0
)

// Dashboard is everything the dashboard page shows
type Dashboard struct {
	Stats          *schema.DashboardStats
	Platforms      []schema.PlatformStats
	Countries      []schema.CountryStats
	Tracks         []schema.TrackStats
	Activities     []schema.UserActivity
	RecentReleases []schema.Release
}

// MonthlyStreams is the stream total of one calendar month
type MonthlyStreams struct {
	Month   time.Time
	Streams int64
}

// Service serves the analytics snapshots of an artist
//
//go:generate mockgen -source=analytics.go -destination=../mocks/analytics.go -package=mocks -mock_names=Service=MockAnalyticsService
type Service interface {
	// GetDashboardStats returns the headline totals; nil when none exist
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*schema.DashboardStats, error)
	// GetPlatformStats returns platform shares, largest first
	GetPlatformStats(ctx context.Context, userID uuid.UUID) ([]schema.PlatformStats, error)
	// GetCountryStats returns country shares, largest first
	GetCountryStats(ctx context.Context, userID uuid.UUID) ([]schema.CountryStats, error)
	// GetTrackStats returns the top tracks leaderboard, most streamed first
	GetTrackStats(ctx context.Context, userID uuid.UUID) ([]schema.TrackStats, error)
	// SeedIfAbsent provisions the default dataset into every empty collection
	SeedIfAbsent(ctx context.Context, userID uuid.UUID) (store.SeedResult, error)
	// GetDashboard seeds if needed and returns the full dashboard
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
	// GetReleaseStreams returns the per-platform stream totals of an owned release
	GetReleaseStreams(ctx context.Context, ownerID, releaseID uuid.UUID) ([]store.PlatformStreamTotal, error)
	// GetMonthlyStreams returns a gap-free monthly timeline ending with the current month
	GetMonthlyStreams(ctx context.Context, ownerID uuid.UUID, months int) ([]MonthlyStreams, error)
	// IngestStreams stores externally reported daily stream counts for a release and returns the rows written
	IngestStreams(ctx context.Context, releaseID uuid.UUID, reports []StreamReport) (int, error)
}

type service struct {
	store    store.Store
	activity activity.Service
	releases release.Service
	clock    adapter.Clock
}

// NewService creates an analytics service
func NewService(st store.Store, activitySvc activity.Service, releaseSvc release.Service, clock adapter.Clock) Service {
	return &service{
		store:    st,
		activity: activitySvc,
		releases: releaseSvc,
		clock:    clock,
	}
}

func (s *service) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*schema.DashboardStats, error) {
	stats, err := s.store.GetDashboardStats(ctx, userID)
	if err != nil {
		return nil, persistenceError(ctx, "failed to get dashboard stats", err, userID)
	}
	return stats, nil
}

func (s *service) GetPlatformStats(ctx context.Context, userID uuid.UUID) ([]schema.PlatformStats, error) {
	platforms, err := s.store.ListPlatformStats(ctx, userID)
	if err != nil {
		return nil, persistenceError(ctx, "failed to list platform stats", err, userID)
	}
	checkShares(ctx, "platform_stats", userID, ShareTotal(platforms, func(p schema.PlatformStats) float64 { return p.Percentage }))
	return platforms, nil
}

func (s *service) GetCountryStats(ctx context.Context, userID uuid.UUID) ([]schema.CountryStats, error) {
	countries, err := s.store.ListCountryStats(ctx, userID)
	if err != nil {
		return nil, persistenceError(ctx, "failed to list country stats", err, userID)
	}
	checkShares(ctx, "country_stats", userID, ShareTotal(countries, func(c schema.CountryStats) float64 { return c.Percentage }))
	return countries, nil
}

func (s *service) GetTrackStats(ctx context.Context, userID uuid.UUID) ([]schema.TrackStats, error) {
	tracks, err := s.store.ListTrackStats(ctx, userID)
	if err != nil {
		return nil, persistenceError(ctx, "failed to list track stats", err, userID)
	}
	return tracks, nil
}

func (s *service) SeedIfAbsent(ctx context.Context, userID uuid.UUID) (store.SeedResult, error) {
	result, err := s.store.SeedAnalytics(ctx, userID, DefaultSeedData(userID, s.clock.Now()))
	if err != nil {
		return store.SeedResult{}, persistenceError(ctx, "failed to seed analytics", err, userID)
	}

	if result.Total() > 0 {
		metrics.RecordSeededRows("dashboard_stats", result.Dashboard)
		metrics.RecordSeededRows("platform_stats", result.Platforms)
		metrics.RecordSeededRows("country_stats", result.Countries)
		metrics.RecordSeededRows("track_stats", result.Tracks)
		metrics.RecordSeededRows("user_activity", result.Activities)

		logger.InfoCtx(ctx, "Seeded default analytics",
			zap.String("userID", userID.String()),
			zap.Int64("dashboard", result.Dashboard),
			zap.Int64("platforms", result.Platforms),
			zap.Int64("countries", result.Countries),
			zap.Int64("tracks", result.Tracks),
			zap.Int64("activities", result.Activities),
		)
	}

	return result, nil
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	if _, err := s.SeedIfAbsent(ctx, userID); err != nil {
		return nil, err
	}

	stats, err := s.GetDashboardStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	platforms, err := s.GetPlatformStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	countries, err := s.GetCountryStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	tracks, err := s.GetTrackStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activity.List(ctx, userID, activity.DefaultLimit)
	if err != nil {
		return nil, err
	}
	recent, err := s.releases.ListRecentReleases(ctx, userID, release.DefaultRecentLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:          stats,
		Platforms:      platforms,
		Countries:      countries,
		Tracks:         tracks,
		Activities:     activities,
		RecentReleases: recent,
	}, nil
}

func (s *service) GetReleaseStreams(ctx context.Context, ownerID, releaseID uuid.UUID) ([]store.PlatformStreamTotal, error) {
	if _, err := s.releases.GetRelease(ctx, ownerID, releaseID); err != nil {
		return nil, err
	}

	totals, err := s.store.GetReleaseStreamsByPlatform(ctx, ownerID, releaseID)
	if err != nil {
		return nil, persistenceError(ctx, "failed to sum release streams", err, ownerID)
	}
	return totals, nil
}

func (s *service) GetMonthlyStreams(ctx context.Context, ownerID uuid.UUID, months int) ([]MonthlyStreams, error) {
	if months <= 0 {
		months = DefaultMonths
	}
	if months > MaxMonths {
		return nil, domain.NewValidationError("months", fmt.Sprintf("must be at most %d", MaxMonths))
	}

	now := s.clock.Now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	since := current.AddDate(0, -(months - 1), 0)

	totals, err := s.store.GetMonthlyStreams(ctx, ownerID, since)
	if err != nil {
		return nil, persistenceError(ctx, "failed to sum monthly streams", err, ownerID)
	}

	byMonth := make(map[time.Time]int64, len(totals))
	for _, t := range totals {
		m := t.Month.UTC()
		byMonth[time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)] += t.Streams
	}

	timeline := make([]MonthlyStreams, 0, months)
	for m := since; !m.After(current); m = m.AddDate(0, 1, 0) {
		timeline = append(timeline, MonthlyStreams{Month: m, Streams: byMonth[m]})
	}
	return timeline, nil
}

// ShareTotal sums the percentage shares of a collection
func ShareTotal[T any](rows []T, share func(T) float64) float64 {
	var total float64
	for _, r := range rows {
		total += share(r)
	}
	return total
}

// checkShares reports collections whose shares do not add up to roughly 100.
// The data is ingested from outside, so this is surfaced rather than enforced.
func checkShares(ctx context.Context, collection string, userID uuid.UUID, total float64) {
	if total == 0 || math.Abs(total-100) <= shareTolerance {
		return
	}
	logger.WarnCtx(ctx, "Percentage shares do not add up to 100",
		zap.String("collection", collection),
		zap.String("userID", userID.String()),
		zap.Float64("total", total),
	)
}

func persistenceError(ctx context.Context, msg string, err error, userID uuid.UUID) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	logger.ErrorCtx(ctx, fmt.Errorf("%s: %w", msg, err), zap.String("userID", userID.String()))
	return domain.ErrPersistence
}
