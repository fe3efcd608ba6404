package jetstream_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/mocks"
	"github.com/indietrack/artist-dashboard/internal/providers/jetstream"
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

type testPublisherMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mocks.MockNatsJetStream
	natsConn  *mocks.MockNatsConn
	jetStream *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:      ctrl,
		natsJS:    mocks.NewMockNatsJetStream(ctrl),
		natsConn:  mocks.NewMockNatsConn(ctrl),
		jetStream: mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "ACTIVITY",
		SubjectPrefix:  "activity.",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "artist-dashboard-test",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	cfg := testConfig()
	tm.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(tm.natsConn, tm.jetStream, nil)
	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), "ACTIVITY", []string{"activity.>"}).Return(nil)
	tm.natsConn.EXPECT().ConnectedUrl().Return(cfg.URL)

	pub, err := jetstream.NewPublisher(context.Background(), cfg, tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	assert.NotNil(t, pub)
}

func TestNewPublisher_ConnectError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestNewPublisher_StreamError(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.natsConn, tm.jetStream, nil)
	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
	tm.natsConn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON())
	assert.Error(t, err)
	assert.Nil(t, pub)
}

func TestPublisher_PublishActivity(t *testing.T) {
	tm := setupTestPublisher(t)
	defer tm.ctrl.Finish()

	tm.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(tm.natsConn, tm.jetStream, nil)
	tm.jetStream.EXPECT().EnsureStream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tm.natsConn.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	pub, err := jetstream.NewPublisher(context.Background(), testConfig(), tm.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.ActivityEvent{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ActivityType: domain.ActivityReleaseCreated,
		Icon:         domain.ActivityReleaseCreated.Icon(),
		Title:        `New release "Blue" created`,
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	tm.jetStream.EXPECT().
		Publish(gomock.Any(), "activity."+event.UserID.String()+".release-created", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subject string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			assert.Contains(t, string(data), `"activity_type":"release-created"`)
			assert.Len(t, opts, 1)
			return &natsjs.PubAck{Stream: "ACTIVITY", Sequence: 1}, nil
		})

	require.NoError(t, pub.PublishActivity(context.Background(), event))

	tm.jetStream.EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))
	assert.Error(t, pub.PublishActivity(context.Background(), event))

	tm.natsConn.EXPECT().Drain().Return(nil)
	pub.Close()
}
