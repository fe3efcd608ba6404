package activity_test

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
	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/mocks"
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

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type testActivityMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	service   activity.Service
}

func setupTestActivity(t *testing.T) *testActivityMocks {
	ctrl := gomock.NewController(t)
	tm := &testActivityMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(testNow).AnyTimes()
	tm.service = activity.NewService(tm.store, tm.publisher, tm.clock, adapter.NewJSON())
	return tm
}

func TestService_Record(t *testing.T) {
	tm := setupTestActivity(t)
	defer tm.ctrl.Finish()

	userID := uuid.New()
	releaseID := uuid.New()
	var stored *schema.UserActivity

	tm.store.EXPECT().
		CreateActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *schema.UserActivity) error {
			stored = a
			return nil
		})
	tm.publisher.EXPECT().
		PublishActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *domain.ActivityEvent) error {
			assert.Equal(t, stored.ID, e.ID)
			assert.Equal(t, "disc", e.Icon)
			assert.JSONEq(t, `{"release_id":"`+releaseID.String()+`"}`, string(e.Metadata))
			return nil
		})

	err := tm.service.Record(context.Background(), userID, domain.ActivityReleaseCreated, `New release "Blue" created`, nil,
		map[string]interface{}{"release_id": releaseID.String()})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, domain.ActivityReleaseCreated, stored.ActivityType)
	assert.Nil(t, stored.ActivityTime)
	assert.Nil(t, stored.SeedKey)
	assert.Equal(t, testNow, stored.CreatedAt)
}

func TestService_Record_PublishFailureIsIgnored(t *testing.T) {
	tm := setupTestActivity(t)
	defer tm.ctrl.Finish()

	at := testNow.Add(-time.Hour)
	tm.store.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishActivity(gomock.Any(), gomock.Any()).Return(errors.New("nats: timeout"))

	err := tm.service.Record(context.Background(), uuid.New(), domain.ActivityPayment, "Payment received", &at, nil)
	assert.NoError(t, err)
}

func TestService_Record_StoreFailure(t *testing.T) {
	tm := setupTestActivity(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	err := tm.service.Record(context.Background(), uuid.New(), domain.ActivityTrackAdded, `New track "Intro" added`, nil, nil)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestService_Record_Validation(t *testing.T) {
	tm := setupTestActivity(t)
	defer tm.ctrl.Finish()

	err := tm.service.Record(context.Background(), uuid.New(), domain.ActivityType("release-deleted"), "gone", nil, nil)
	assert.True(t, domain.IsValidationError(err))

	err = tm.service.Record(context.Background(), uuid.New(), domain.ActivityPayment, "   ", nil, nil)
	assert.True(t, domain.IsValidationError(err))
}

func TestService_Record_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow)
	st.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(nil)

	svc := activity.NewService(st, nil, clock, adapter.NewJSON())
	assert.NoError(t, svc.Record(context.Background(), uuid.New(), domain.ActivityNewFollower, "1 new follower", nil, nil))
}

func TestService_List(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: activity.DefaultLimit},
		{name: "negative", limit: -5, wantLimit: activity.DefaultLimit},
		{name: "explicit", limit: 25, wantLimit: 25},
		{name: "capped", limit: 500, wantLimit: activity.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestActivity(t)
			defer tm.ctrl.Finish()

			userID := uuid.New()
			tm.store.EXPECT().
				ListActivities(gomock.Any(), userID, tt.wantLimit).
				Return([]schema.UserActivity{{ID: uuid.New(), UserID: userID}}, nil)

			got, err := tm.service.List(context.Background(), userID, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestService_List_StoreFailure(t *testing.T) {
	tm := setupTestActivity(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().ListActivities(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := tm.service.List(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
