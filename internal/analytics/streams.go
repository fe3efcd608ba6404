package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/logger"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// MaxStreamReports caps the number of daily counts accepted in one ingest call
const MaxStreamReports = 1000

// StreamReport is one platform's stream count for a release (or one of its tracks) on one day
type StreamReport struct {
	TrackID  *uuid.UUID
	Platform string
	Date     string
	Streams  int64
}

func (s *service) IngestStreams(ctx context.Context, releaseID uuid.UUID, reports []StreamReport) (int, error) {
	if len(reports) == 0 {
		return 0, domain.NewValidationError("reports", "at least one report is required")
	}
	if len(reports) > MaxStreamReports {
		return 0, domain.NewValidationError("reports", fmt.Sprintf("at most %d reports per call", MaxStreamReports))
	}

	r, err := s.store.GetReleaseByID(ctx, releaseID)
	if err != nil {
		return 0, persistenceError(ctx, "failed to get release", err, uuid.Nil)
	}
	if r == nil {
		return 0, domain.ErrNotFound
	}

	tracks, err := s.store.ListTracks(ctx, r.ArtistID, releaseID)
	if err != nil {
		return 0, persistenceError(ctx, "failed to list tracks", err, r.ArtistID)
	}
	onRelease := make(map[uuid.UUID]bool, len(tracks))
	for _, t := range tracks {
		onRelease[t.ID] = true
	}

	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	rows := make([]schema.StreamingStat, 0, len(reports))
	for i, rep := range reports {
		field := fmt.Sprintf("reports[%d]", i)

		platform := strings.TrimSpace(rep.Platform)
		if platform == "" {
			return 0, domain.NewValidationError(field+".platform", "is required")
		}
		day, err := time.Parse(domain.DateLayout, rep.Date)
		if err != nil {
			return 0, domain.NewValidationError(field+".date", "must be a date formatted as "+domain.DateLayout)
		}
		if day.After(today) {
			return 0, domain.NewValidationError(field+".date", "must not be in the future")
		}
		if rep.Streams < 0 {
			return 0, domain.NewValidationError(field+".streams", "must not be negative")
		}
		if rep.TrackID != nil && !onRelease[*rep.TrackID] {
			return 0, domain.NewValidationError(field+".track_id", "is not a track of this release")
		}

		rows = append(rows, schema.StreamingStat{
			ReleaseID:   &releaseID,
			TrackID:     rep.TrackID,
			Platform:    platform,
			Date:        datatypes.Date(day),
			StreamCount: rep.Streams,
		})
	}

	if err := s.store.CreateStreamingStats(ctx, rows); err != nil {
		return 0, persistenceError(ctx, "failed to store streaming stats", err, r.ArtistID)
	}

	logger.InfoCtx(ctx, "Ingested streaming stats",
		zap.String("releaseID", releaseID.String()),
		zap.Int("rows", len(rows)),
	)
	return len(rows), nil
}
