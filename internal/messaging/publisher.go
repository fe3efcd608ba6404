package messaging

import (
	"context"

	"github.com/indietrack/artist-dashboard/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishActivity publishes a recorded activity to the message broker
	PublishActivity(ctx context.Context, event *domain.ActivityEvent) error
	// Close closes the connection
	Close()
}

// NopPublisher discards every event; used when no broker is configured
type NopPublisher struct{}

func (NopPublisher) PublishActivity(context.Context, *domain.ActivityEvent) error { return nil }

func (NopPublisher) Close() {}
