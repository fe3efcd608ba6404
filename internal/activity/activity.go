package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/indietrack/artist-dashboard/internal/adapter"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/messaging"
	"github.com/indietrack/artist-dashboard/internal/metrics"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

const (
	// DefaultLimit is the number of entries returned when no limit is given
	DefaultLimit = 10
	// MaxLimit caps the number of entries a single list call returns
	MaxLimit = 100
)

// Service records and lists the user-visible activity feed
//
//go:generate mockgen -source=activity.go -destination=../mocks/activity.go -package=mocks -mock_names=Service=MockActivityService
type Service interface {
	// Record appends an activity entry. A nil at leaves the activity time unset.
	// Failures are logged before being returned, so best-effort callers may ignore them.
	Record(ctx context.Context, userID uuid.UUID, activityType domain.ActivityType, title string, at *time.Time, metadata map[string]interface{}) error
	// List returns the newest entries first; limit <= 0 uses DefaultLimit
	List(ctx context.Context, userID uuid.UUID, limit int) ([]schema.UserActivity, error)
}

type service struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
}

// NewService creates an activity service. publisher may be nil when no broker is configured.
func NewService(st store.Store, publisher messaging.Publisher, clock adapter.Clock, json adapter.JSON) Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &service{store: st, publisher: publisher, clock: clock, json: json}
}

func (s *service) Record(ctx context.Context, userID uuid.UUID, activityType domain.ActivityType, title string, at *time.Time, metadata map[string]interface{}) error {
	if !activityType.Valid() {
		return domain.NewValidationError("activity_type", fmt.Sprintf("unknown activity type %q", activityType))
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.NewValidationError("title", "is required")
	}

	entry := &schema.UserActivity{
		ID:           uuid.New(),
		UserID:       userID,
		ActivityType: activityType,
		Title:        title,
		ActivityTime: at,
		CreatedAt:    s.clock.Now(),
	}

	if len(metadata) > 0 {
		raw, err := s.json.Marshal(metadata)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal activity metadata: %w", err),
				zap.String("userID", userID.String()),
				zap.String("activityType", string(activityType)),
			)
			return domain.ErrPersistence
		}
		entry.Metadata = datatypes.JSON(raw)
	}

	if err := s.store.CreateActivity(ctx, entry); err != nil {
		metrics.RecordActivity(string(activityType), false)
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record activity: %w", err),
			zap.String("userID", userID.String()),
			zap.String("activityType", string(activityType)),
		)
		return domain.ErrPersistence
	}
	metrics.RecordActivity(string(activityType), true)

	event := &domain.ActivityEvent{
		ID:           entry.ID,
		UserID:       entry.UserID,
		ActivityType: entry.ActivityType,
		Icon:         entry.ActivityType.Icon(),
		Title:        entry.Title,
		ActivityTime: entry.ActivityTime,
		Metadata:     []byte(entry.Metadata),
		CreatedAt:    entry.CreatedAt,
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish activity event",
			zap.Error(err),
			zap.String("activityID", entry.ID.String()),
		)
	}

	return nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, limit int) ([]schema.UserActivity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	activities, err := s.store.ListActivities(ctx, userID, limit)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to list activities: %w", err), zap.String("userID", userID.String()))
		return nil, domain.ErrPersistence
	}
	return activities, nil
}
