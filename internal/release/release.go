package release

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/activity"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/metrics"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

const (
	// MinTitleLength is the minimum trimmed length of a release title
	MinTitleLength = 2
	// MaxDescriptionLength is the maximum length of a release description in characters
	MaxDescriptionLength = 1000
	// DefaultRecentLimit is the number of releases shown on the dashboard
	DefaultRecentLimit = 3
)

// CreateReleaseInput holds the artist-supplied fields of a new release
type CreateReleaseInput struct {
	OwnerID     uuid.UUID
	Title       string
	ReleaseDate string
	Status      domain.ReleaseStatus
	Genre       *string
	Description *string
	ReleaseType *domain.ReleaseType
	CoverArtURL *string
}

// UpdateReleaseInput holds the fields to change; nil fields are left untouched
type UpdateReleaseInput struct {
	ReleaseID   uuid.UUID
	OwnerID     uuid.UUID
	Title       *string
	ReleaseDate *string
	Status      *domain.ReleaseStatus
	Genre       *string
	Description *string
	ReleaseType *domain.ReleaseType
	CoverArtURL *string
}

// CreateTrackInput holds the fields of a new track
type CreateTrackInput struct {
	ReleaseID   uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	TrackNumber int
	Duration    *int
	AudioURL    *string
	ISRC        *string
}

// Service manages releases and their tracks
//
//go:generate mockgen -source=release.go -destination=../mocks/release.go -package=mocks -mock_names=Service=MockReleaseService
type Service interface {
	// CreateRelease creates a draft or scheduled release pending moderation
	CreateRelease(ctx context.Context, input CreateReleaseInput) (*schema.Release, error)
	// UpdateRelease applies the supplied fields, validating any status change
	UpdateRelease(ctx context.Context, input UpdateReleaseInput) (*schema.Release, error)
	// GetRelease returns an owned release; domain.ErrNotFound otherwise
	GetRelease(ctx context.Context, ownerID, releaseID uuid.UUID) (*schema.Release, error)
	// ListReleases returns every owned release, newest first
	ListReleases(ctx context.Context, ownerID uuid.UUID) ([]schema.Release, error)
	// ListRecentReleases returns the newest owned releases; limit <= 0 uses DefaultRecentLimit
	ListRecentReleases(ctx context.Context, ownerID uuid.UUID, limit int) ([]schema.Release, error)
	// CreateTrack adds a track to an owned release
	CreateTrack(ctx context.Context, input CreateTrackInput) (*schema.Track, error)
	// ListTracks returns the tracks of an owned release by track number
	ListTracks(ctx context.Context, ownerID, releaseID uuid.UUID) ([]schema.Track, error)
	// ApplyModeration records a moderator decision on a release
	ApplyModeration(ctx context.Context, releaseID uuid.UUID, decision domain.ModerationStatus) (*schema.Release, error)
	// UpdateDistribution records the delivery pipeline state of a release
	UpdateDistribution(ctx context.Context, releaseID uuid.UUID, status domain.DistributionStatus, upc *string) (*schema.Release, error)
}

type service struct {
	store    store.Store
	activity activity.Service
}

// NewService creates a release service
func NewService(st store.Store, activitySvc activity.Service) Service {
	return &service{store: st, activity: activitySvc}
}

func (s *service) CreateRelease(ctx context.Context, input CreateReleaseInput) (*schema.Release, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}
	releaseDate, err := parseReleaseDate(input.ReleaseDate)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	releaseType := domain.ReleaseTypeSingle
	if input.ReleaseType != nil {
		if !input.ReleaseType.Valid() {
			return nil, domain.NewValidationError("release_type", "must be one of single, ep, album, compilation")
		}
		releaseType = *input.ReleaseType
	}

	status := input.Status
	if status == "" {
		status = domain.ReleaseStatusDraft
	}
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of draft, scheduled, published, rejected")
	}
	// A new release starts pending moderation, so it can only enter the
	// lifecycle as a draft or scheduled release.
	if status != domain.ReleaseStatusDraft && status != domain.ReleaseStatusScheduled {
		metrics.RecordReleaseTransition("", string(status), false)
		return nil, &domain.TransitionError{
			From:    domain.ReleaseStatusDraft,
			To:      status,
			Allowed: []domain.ReleaseStatus{domain.ReleaseStatusDraft, domain.ReleaseStatusScheduled},
			Reason:  "new releases start as draft or scheduled",
		}
	}

	release, err := s.store.CreateRelease(ctx, store.CreateReleaseInput{
		ArtistID:    input.OwnerID,
		Title:       title,
		ReleaseDate: releaseDate,
		Status:      status,
		Genre:       trimOptional(input.Genre),
		Description: input.Description,
		ReleaseType: releaseType,
		CoverArtURL: trimOptional(input.CoverArtURL),
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create release: %w", err), zap.String("ownerID", input.OwnerID.String()))
		return nil, domain.ErrCreationFailed
	}

	s.recordActivity(ctx, input.OwnerID, domain.ActivityReleaseCreated,
		fmt.Sprintf("New release %q created", release.Title),
		map[string]interface{}{"release_id": release.ID.String()})

	return release, nil
}

func (s *service) UpdateRelease(ctx context.Context, input UpdateReleaseInput) (*schema.Release, error) {
	var fields store.UpdateReleaseFields

	if input.Title != nil {
		title, err := validateTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		fields.Title = &title
	}
	if input.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*input.ReleaseDate)
		if err != nil {
			return nil, err
		}
		fields.ReleaseDate = &releaseDate
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}
	if input.ReleaseType != nil && !input.ReleaseType.Valid() {
		return nil, domain.NewValidationError("release_type", "must be one of single, ep, album, compilation")
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of draft, scheduled, published, rejected")
	}
	fields.Genre = trimOptional(input.Genre)
	fields.Description = input.Description
	fields.ReleaseType = input.ReleaseType
	fields.CoverArtURL = trimOptional(input.CoverArtURL)

	current, err := s.store.GetRelease(ctx, input.OwnerID, input.ReleaseID)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to get release", err, input.ReleaseID)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	if input.Status != nil && *input.Status != current.Status {
		next := *input.Status
		if err := domain.ValidateTransition(current.Status, next, current.ModerationStatus); err != nil {
			metrics.RecordReleaseTransition(string(current.Status), string(next), false)
			return nil, err
		}
		metrics.RecordReleaseTransition(string(current.Status), string(next), true)
		fields.Status = &next
		fields.ExpectedStatus = &current.Status

		// Resubmission goes back through review
		if current.Status == domain.ReleaseStatusRejected && next == domain.ReleaseStatusDraft {
			pending := domain.ModerationStatusPending
			fields.ModerationStatus = &pending
		}
	}

	if fields.Empty() {
		return current, nil
	}

	updated, err := s.store.UpdateRelease(ctx, input.OwnerID, input.ReleaseID, fields)
	if err != nil {
		if errors.Is(err, store.ErrReleaseNotApproved) {
			// Moderation changed between the read and the write
			return nil, &domain.TransitionError{
				From:    current.Status,
				To:      domain.ReleaseStatusPublished,
				Allowed: current.Status.AllowedTransitions(),
				Reason:  "moderation has not approved this release",
			}
		}
		if errors.Is(err, store.ErrReleaseStatusChanged) {
			return nil, statusChangedError(current.Status, *fields.Status)
		}
		return nil, s.persistenceError(ctx, "failed to update release", err, input.ReleaseID)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	s.recordActivity(ctx, input.OwnerID, domain.ActivityReleaseUpdated,
		fmt.Sprintf("Release %q updated", updated.Title),
		map[string]interface{}{"release_id": updated.ID.String(), "status": string(updated.Status)})

	return updated, nil
}

func (s *service) GetRelease(ctx context.Context, ownerID, releaseID uuid.UUID) (*schema.Release, error) {
	release, err := s.store.GetRelease(ctx, ownerID, releaseID)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to get release", err, releaseID)
	}
	if release == nil {
		return nil, domain.ErrNotFound
	}
	return release, nil
}

func (s *service) ListReleases(ctx context.Context, ownerID uuid.UUID) ([]schema.Release, error) {
	releases, err := s.store.ListReleases(ctx, ownerID, 0)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to list releases", err, uuid.Nil)
	}
	return releases, nil
}

func (s *service) ListRecentReleases(ctx context.Context, ownerID uuid.UUID, limit int) ([]schema.Release, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	releases, err := s.store.ListReleases(ctx, ownerID, limit)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to list recent releases", err, uuid.Nil)
	}
	return releases, nil
}

func (s *service) CreateTrack(ctx context.Context, input CreateTrackInput) (*schema.Track, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if input.TrackNumber < 1 {
		return nil, domain.NewValidationError("track_number", "must be at least 1")
	}
	if input.Duration != nil && *input.Duration < 0 {
		return nil, domain.NewValidationError("duration", "must not be negative")
	}

	track, err := s.store.CreateTrack(ctx, input.OwnerID, store.CreateTrackInput{
		ReleaseID:   input.ReleaseID,
		Title:       title,
		TrackNumber: input.TrackNumber,
		Duration:    input.Duration,
		AudioURL:    trimOptional(input.AudioURL),
		ISRC:        trimOptional(input.ISRC),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, store.ErrDuplicateTrackNumber):
			return nil, domain.NewValidationError("track_number",
				fmt.Sprintf("track %d already exists on this release", input.TrackNumber))
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to create track: %w", err), zap.String("releaseID", input.ReleaseID.String()))
		return nil, domain.ErrCreationFailed
	}

	s.recordActivity(ctx, input.OwnerID, domain.ActivityTrackAdded,
		fmt.Sprintf("New track %q added", track.Title),
		map[string]interface{}{"release_id": input.ReleaseID.String(), "track_number": track.TrackNumber})

	return track, nil
}

func (s *service) ListTracks(ctx context.Context, ownerID, releaseID uuid.UUID) ([]schema.Track, error) {
	// Resolve ownership first so a foreign release reads as missing rather than empty
	if _, err := s.GetRelease(ctx, ownerID, releaseID); err != nil {
		return nil, err
	}
	tracks, err := s.store.ListTracks(ctx, ownerID, releaseID)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to list tracks", err, releaseID)
	}
	return tracks, nil
}

func (s *service) ApplyModeration(ctx context.Context, releaseID uuid.UUID, decision domain.ModerationStatus) (*schema.Release, error) {
	if decision != domain.ModerationStatusApproved && decision != domain.ModerationStatusRejected {
		return nil, domain.NewValidationError("moderation_status", "must be approved or rejected")
	}

	current, err := s.store.GetReleaseByID(ctx, releaseID)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to get release", err, releaseID)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if current.Status == domain.ReleaseStatusPublished {
		return nil, domain.NewValidationError("moderation_status", "published releases cannot be moderated")
	}

	fields := store.UpdateReleaseFields{ModerationStatus: &decision, ExpectedStatus: &current.Status}
	if decision == domain.ModerationStatusRejected && current.Status != domain.ReleaseStatusRejected {
		rejected := domain.ReleaseStatusRejected
		if err := domain.ValidateTransition(current.Status, rejected, decision); err != nil {
			metrics.RecordReleaseTransition(string(current.Status), string(rejected), false)
			return nil, err
		}
		metrics.RecordReleaseTransition(string(current.Status), string(rejected), true)
		fields.Status = &rejected
	}

	updated, err := s.store.UpdateReleaseReview(ctx, releaseID, fields)
	if err != nil {
		if errors.Is(err, store.ErrReleaseStatusChanged) {
			to := current.Status
			if fields.Status != nil {
				to = *fields.Status
			}
			return nil, statusChangedError(current.Status, to)
		}
		return nil, s.persistenceError(ctx, "failed to apply moderation", err, releaseID)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	verb := "approved"
	if decision == domain.ModerationStatusRejected {
		verb = "rejected"
	}
	s.recordActivity(ctx, updated.ArtistID, domain.ActivityReleaseUpdated,
		fmt.Sprintf("Release %q %s in review", updated.Title, verb),
		map[string]interface{}{"release_id": updated.ID.String(), "moderation_status": string(decision)})

	return updated, nil
}

func (s *service) UpdateDistribution(ctx context.Context, releaseID uuid.UUID, status domain.DistributionStatus, upc *string) (*schema.Release, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("distribution_status", "must be one of not_started, in_progress, completed, failed")
	}
	upc = trimOptional(upc)
	if upc != nil && *upc == "" {
		return nil, domain.NewValidationError("upc", "must not be blank")
	}

	current, err := s.store.GetReleaseByID(ctx, releaseID)
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to get release", err, releaseID)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if (status == domain.DistributionStatusInProgress || status == domain.DistributionStatusCompleted) &&
		current.ModerationStatus != domain.ModerationStatusApproved {
		return nil, domain.NewValidationError("distribution_status", "release has not been approved by moderation")
	}

	updated, err := s.store.UpdateReleaseReview(ctx, releaseID, store.UpdateReleaseFields{
		DistributionStatus: &status,
		UPC:                upc,
	})
	if err != nil {
		return nil, s.persistenceError(ctx, "failed to update distribution", err, releaseID)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}

// recordActivity writes the activity entry after the primary write. Failures
// are logged by the activity service and never fail the operation.
func (s *service) recordActivity(ctx context.Context, ownerID uuid.UUID, activityType domain.ActivityType, title string, metadata map[string]interface{}) {
	_ = s.activity.Record(ctx, ownerID, activityType, title, nil, metadata)
}

func (s *service) persistenceError(ctx context.Context, msg string, err error, releaseID uuid.UUID) error {
	fields := []zap.Field{}
	if releaseID != uuid.Nil {
		fields = append(fields, zap.String("releaseID", releaseID.String()))
	}
	logger.ErrorCtx(ctx, fmt.Errorf("%s: %w", msg, err), fields...)
	return domain.ErrPersistence
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return "", domain.NewValidationError("title", fmt.Sprintf("must be at least %d characters", MinTitleLength))
	}
	return title, nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.NewValidationError("release_date", "is required")
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("release_date", "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return domain.NewValidationError("description", fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// statusChangedError reports a transition validated against a status that another writer has since replaced
func statusChangedError(from, to domain.ReleaseStatus) error {
	return &domain.TransitionError{
		From:    from,
		To:      to,
		Allowed: from.AllowedTransitions(),
		Reason:  "release status changed concurrently; reload and retry",
	}
}
