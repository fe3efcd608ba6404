package release_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/release"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/pgtest"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// steppingClock advances by a fixed step on every read so that rows written
// in one transaction still get distinct, ordered timestamps
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *steppingClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func TestScenario_ReleaseLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("requires PostgreSQL")
	}

	ctx := context.Background()
	database, err := pgtest.Start(ctx)
	require.NoError(t, err)
	defer database.Terminate(ctx)

	st := store.NewPGStore(database.BeginTx(t))
	clock := &steppingClock{now: time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC), step: time.Second}
	activitySvc := activity.NewService(st, nil, clock, adapter.NewJSON())
	releaseSvc := release.NewService(st, activitySvc)

	userID := uuid.New()
	_, err = st.EnsureProfile(ctx, &schema.Profile{ID: userID, ArtistName: "Scenario Artist"})
	require.NoError(t, err)

	created, err := releaseSvc.CreateRelease(ctx, release.CreateReleaseInput{
		OwnerID:     userID,
		Title:       "Summer Vibes EP",
		ReleaseDate: "2023-06-15",
		Status:      domain.ReleaseStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReleaseStatusDraft, created.Status)
	assert.Equal(t, domain.ModerationStatusPending, created.ModerationStatus)
	assert.Equal(t, domain.DistributionStatusNotStarted, created.DistributionStatus)

	track, err := releaseSvc.CreateTrack(ctx, release.CreateTrackInput{
		ReleaseID:   created.ID,
		OwnerID:     userID,
		Title:       "Summer Vibes",
		TrackNumber: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, track.TrackNumber)

	entries, err := activitySvc.List(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.ActivityTrackAdded, entries[0].ActivityType)
	assert.Contains(t, entries[0].Title, "Summer Vibes")
	assert.Equal(t, domain.ActivityReleaseCreated, entries[1].ActivityType)
	assert.Contains(t, entries[1].Title, "Summer Vibes EP")

	// Another artist cannot see or change the release
	intruder := uuid.New()
	_, err = releaseSvc.UpdateRelease(ctx, release.UpdateReleaseInput{
		ReleaseID: created.ID,
		OwnerID:   intruder,
		Title:     ptr("Stolen"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unchanged, err := releaseSvc.GetRelease(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Vibes EP", unchanged.Title)

	// Publishing waits for moderation
	published := domain.ReleaseStatusPublished
	_, err = releaseSvc.UpdateRelease(ctx, release.UpdateReleaseInput{ReleaseID: created.ID, OwnerID: userID, Status: &published})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = releaseSvc.ApplyModeration(ctx, created.ID, domain.ModerationStatusApproved)
	require.NoError(t, err)

	live, err := releaseSvc.UpdateRelease(ctx, release.UpdateReleaseInput{ReleaseID: created.ID, OwnerID: userID, Status: &published})
	require.NoError(t, err)
	assert.Equal(t, domain.ReleaseStatusPublished, live.Status)
}
