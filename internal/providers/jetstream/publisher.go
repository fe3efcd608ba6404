package jetstream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher connects to NATS, makes sure the activity stream exists and
// returns a publisher for it
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	if err := js.EnsureStream(ctx, cfg.StreamName, []string{prefix + ".>"}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	logger.Info("Connected to NATS JetStream",
		zap.String("url", nc.ConnectedUrl()),
		zap.String("stream", cfg.StreamName),
	)

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
		json:          jsonAdapter,
	}, nil
}

// PublishActivity publishes an activity event to NATS JetStream.
// The event id doubles as the message id so redeliveries are deduplicated.
func (p *publisher) PublishActivity(ctx context.Context, event *domain.ActivityEvent) error {
	logger.DebugCtx(ctx, "Publishing activity event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.js.Publish(ctx, p.buildSubject(event), data, natsjs.WithMsgID(event.ID.String()))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
// Format: {prefix}.{user_id}.{activity_type}, e.g. activity.7d0e....release-created
func (p *publisher) buildSubject(event *domain.ActivityEvent) string {
	return fmt.Sprintf("%s.%s.%s", p.subjectPrefix, event.UserID, event.ActivityType)
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}
