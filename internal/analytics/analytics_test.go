package analytics_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/mocks"
	"github.com/indietrack/artist-dashboard/internal/release"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testNow = time.Date(2024, 3, 20, 15, 30, 0, 0, time.UTC)

type testAnalyticsMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	activity *mocks.MockActivityService
	releases *mocks.MockReleaseService
	clock    *mocks.MockClock
	service  analytics.Service
}

func setupTestAnalytics(t *testing.T) *testAnalyticsMocks {
	ctrl := gomock.NewController(t)
	tm := &testAnalyticsMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		activity: mocks.NewMockActivityService(ctrl),
		releases: mocks.NewMockReleaseService(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.service = analytics.NewService(tm.store, tm.activity, tm.releases, tm.clock)
	return tm
}

func TestDefaultSeedData(t *testing.T) {
	userID := uuid.New()
	data := analytics.DefaultSeedData(userID, testNow)

	assert.Equal(t, int64(86520), data.Dashboard.TotalStreams)
	assert.Equal(t, 3245.78, data.Dashboard.TotalRevenue)
	assert.Equal(t, int64(32450), data.Dashboard.TotalAudience)

	assert.InDelta(t, 100, analytics.ShareTotal(data.Platforms, func(p schema.PlatformStats) float64 { return p.Percentage }), 0.001)
	assert.InDelta(t, 100, analytics.ShareTotal(data.Countries, func(c schema.CountryStats) float64 { return c.Percentage }), 0.001)

	// Platform streams add up to the dashboard total
	var streams int64
	for _, p := range data.Platforms {
		streams += p.Streams
	}
	assert.Equal(t, data.Dashboard.TotalStreams, streams)

	require.Len(t, data.Tracks, 5)
	for i := 1; i < len(data.Tracks); i++ {
		assert.GreaterOrEqual(t, data.Tracks[i-1].Streams, data.Tracks[i].Streams)
	}

	require.Len(t, data.Activities, 3)
	seen := map[string]bool{}
	for _, a := range data.Activities {
		require.NotNil(t, a.SeedKey)
		assert.False(t, seen[*a.SeedKey], "seed keys must be unique")
		seen[*a.SeedKey] = true
		assert.True(t, a.ActivityType.Valid())
		require.NotNil(t, a.ActivityTime)
		assert.True(t, a.ActivityTime.Before(testNow))
	}
	assert.Equal(t, testNow.Add(-2*time.Hour), *data.Activities[0].ActivityTime)
}

func TestShareTotal_Empty(t *testing.T) {
	assert.Zero(t, analytics.ShareTotal([]schema.PlatformStats(nil), func(p schema.PlatformStats) float64 { return p.Percentage }))
}

func TestService_SeedIfAbsent(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	gomock.InOrder(
		tm.store.EXPECT().
			SeedAnalytics(gomock.Any(), userID, analytics.DefaultSeedData(userID, testNow)).
			Return(store.SeedResult{Dashboard: 1, Platforms: 4, Countries: 5, Tracks: 5, Activities: 3}, nil),
		tm.store.EXPECT().
			SeedAnalytics(gomock.Any(), userID, gomock.Any()).
			Return(store.SeedResult{}, nil),
	)

	first, err := tm.service.SeedIfAbsent(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(18), first.Total())

	second, err := tm.service.SeedIfAbsent(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, second.Total())
}

func TestService_SeedIfAbsent_Failure(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().SeedAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.SeedResult{}, errors.New("deadlock detected"))

	_, err := tm.service.SeedIfAbsent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestService_GetDashboard_DeletedProfile(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	// The store refuses to seed for a user without a profile; nothing else is read
	userID := uuid.New()
	tm.store.EXPECT().SeedAnalytics(gomock.Any(), userID, gomock.Any()).Return(store.SeedResult{}, domain.ErrNotFound)

	dashboard, err := tm.service.GetDashboard(context.Background(), userID)
	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_GetDashboardStats_Absent(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetDashboardStats(gomock.Any(), gomock.Any()).Return(nil, nil)

	stats, err := tm.service.GetDashboardStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestService_GetDashboard(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	stats := &schema.DashboardStats{UserID: userID, TotalStreams: 86520}
	platforms := []schema.PlatformStats{{PlatformName: "Spotify", Percentage: 60}, {PlatformName: "Others", Percentage: 30}}
	countries := []schema.CountryStats{{CountryName: "Germany", Percentage: 100}}
	tracks := []schema.TrackStats{{TrackName: "Summer Vibes", Streams: 25000}}
	activities := []schema.UserActivity{{Title: "Payment of $127.45 received"}}
	recent := []schema.Release{{Title: "Summer Vibes EP"}}

	tm.store.EXPECT().SeedAnalytics(gomock.Any(), userID, gomock.Any()).Return(store.SeedResult{}, nil)
	tm.store.EXPECT().GetDashboardStats(gomock.Any(), userID).Return(stats, nil)
	tm.store.EXPECT().ListPlatformStats(gomock.Any(), userID).Return(platforms, nil)
	tm.store.EXPECT().ListCountryStats(gomock.Any(), userID).Return(countries, nil)
	tm.store.EXPECT().ListTrackStats(gomock.Any(), userID).Return(tracks, nil)
	tm.activity.EXPECT().List(gomock.Any(), userID, activity.DefaultLimit).Return(activities, nil)
	tm.releases.EXPECT().ListRecentReleases(gomock.Any(), userID, release.DefaultRecentLimit).Return(recent, nil)

	dashboard, err := tm.service.GetDashboard(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, stats, dashboard.Stats)
	assert.Equal(t, platforms, dashboard.Platforms)
	assert.Equal(t, countries, dashboard.Countries)
	assert.Equal(t, tracks, dashboard.Tracks)
	assert.Equal(t, activities, dashboard.Activities)
	assert.Equal(t, recent, dashboard.RecentReleases)
}

func TestService_GetDashboard_StopsOnError(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().SeedAnalytics(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.SeedResult{}, nil)
	tm.store.EXPECT().GetDashboardStats(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := tm.service.GetDashboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestService_GetReleaseStreams(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	owner := uuid.New()
	releaseID := uuid.New()
	totals := []store.PlatformStreamTotal{{Platform: "Spotify", Streams: 150}, {Platform: "Deezer", Streams: 5}}

	tm.releases.EXPECT().GetRelease(gomock.Any(), owner, releaseID).Return(&schema.Release{ID: releaseID}, nil)
	tm.store.EXPECT().GetReleaseStreamsByPlatform(gomock.Any(), owner, releaseID).Return(totals, nil)

	got, err := tm.service.GetReleaseStreams(context.Background(), owner, releaseID)
	require.NoError(t, err)
	assert.Equal(t, totals, got)
}

func TestService_GetReleaseStreams_NotOwned(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	tm.releases.EXPECT().GetRelease(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotFound)

	_, err := tm.service.GetReleaseStreams(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_GetMonthlyStreams(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	owner := uuid.New()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm.store.EXPECT().
		GetMonthlyStreams(gomock.Any(), owner, since).
		Return([]store.MonthlyStreamTotal{
			{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Streams: 150},
			{Month: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Streams: 80},
		}, nil)

	timeline, err := tm.service.GetMonthlyStreams(context.Background(), owner, 3)
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	assert.Equal(t, analytics.MonthlyStreams{Month: since, Streams: 150}, timeline[0])
	assert.Equal(t, analytics.MonthlyStreams{Month: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Streams: 0}, timeline[1])
	assert.Equal(t, int64(80), timeline[2].Streams)
}

func TestService_GetMonthlyStreams_Limits(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().
		GetMonthlyStreams(gomock.Any(), gomock.Any(), time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)

	timeline, err := tm.service.GetMonthlyStreams(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Len(t, timeline, analytics.DefaultMonths)

	_, err = tm.service.GetMonthlyStreams(context.Background(), uuid.New(), analytics.MaxMonths+1)
	assert.True(t, domain.IsValidationError(err))
}

func TestService_IngestStreams(t *testing.T) {
	tm := setupTestAnalytics(t)
	defer tm.ctrl.Finish()

	owner := uuid.New()
	releaseID := uuid.New()
	trackID := uuid.New()

	tm.store.EXPECT().GetReleaseByID(gomock.Any(), releaseID).Return(&schema.Release{ID: releaseID, ArtistID: owner}, nil)
	tm.store.EXPECT().ListTracks(gomock.Any(), owner, releaseID).Return([]schema.Track{{ID: trackID, ReleaseID: releaseID}}, nil)
	tm.store.EXPECT().CreateStreamingStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []schema.StreamingStat) error {
			require.Len(t, rows, 2)
			assert.Equal(t, releaseID, *rows[0].ReleaseID)
			assert.Nil(t, rows[0].TrackID)
			assert.Equal(t, "Spotify", rows[0].Platform)
			assert.Equal(t, int64(120), rows[0].StreamCount)
			assert.Equal(t, trackID, *rows[1].TrackID)
			assert.Equal(t, "2024-03-20", time.Time(rows[1].Date).Format(domain.DateLayout))
			return nil
		})

	n, err := tm.service.IngestStreams(context.Background(), releaseID, []analytics.StreamReport{
		{Platform: " Spotify ", Date: "2024-03-19", Streams: 120},
		{TrackID: &trackID, Platform: "Apple Music", Date: "2024-03-20", Streams: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestService_IngestStreamsValidation(t *testing.T) {
	foreign := uuid.New()
	tests := []struct {
		name   string
		report analytics.StreamReport
	}{
		{name: "missing platform", report: analytics.StreamReport{Platform: " ", Date: "2024-03-19", Streams: 1}},
		{name: "bad date", report: analytics.StreamReport{Platform: "Spotify", Date: "19/03/2024", Streams: 1}},
		{name: "future date", report: analytics.StreamReport{Platform: "Spotify", Date: "2024-03-21", Streams: 1}},
		{name: "negative streams", report: analytics.StreamReport{Platform: "Spotify", Date: "2024-03-19", Streams: -1}},
		{name: "foreign track", report: analytics.StreamReport{TrackID: &foreign, Platform: "Spotify", Date: "2024-03-19", Streams: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestAnalytics(t)
			defer tm.ctrl.Finish()

			releaseID := uuid.New()
			owner := uuid.New()
			tm.store.EXPECT().GetReleaseByID(gomock.Any(), releaseID).Return(&schema.Release{ID: releaseID, ArtistID: owner}, nil)
			tm.store.EXPECT().ListTracks(gomock.Any(), owner, releaseID).Return(nil, nil)

			_, err := tm.service.IngestStreams(context.Background(), releaseID, []analytics.StreamReport{tt.report})
			assert.True(t, domain.IsValidationError(err))
		})
	}
}

func TestService_IngestStreamsErrors(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		tm := setupTestAnalytics(t)
		defer tm.ctrl.Finish()

		_, err := tm.service.IngestStreams(context.Background(), uuid.New(), nil)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("unknown release", func(t *testing.T) {
		tm := setupTestAnalytics(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().GetReleaseByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := tm.service.IngestStreams(context.Background(), uuid.New(), []analytics.StreamReport{{Platform: "Spotify", Date: "2024-03-19"}})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("insert failure", func(t *testing.T) {
		tm := setupTestAnalytics(t)
		defer tm.ctrl.Finish()

		releaseID := uuid.New()
		tm.store.EXPECT().GetReleaseByID(gomock.Any(), releaseID).Return(&schema.Release{ID: releaseID, ArtistID: uuid.New()}, nil)
		tm.store.EXPECT().ListTracks(gomock.Any(), gomock.Any(), releaseID).Return(nil, nil)
		tm.store.EXPECT().CreateStreamingStats(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := tm.service.IngestStreams(context.Background(), releaseID, []analytics.StreamReport{{Platform: "Spotify", Date: "2024-03-19"}})
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}
