package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/store"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// ReleaseResponse represents a release with its optional tracks
type ReleaseResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	ArtistID           uuid.UUID                 `json:"artist_id"`
	Title              string                    `json:"title"`
	ReleaseDate        string                    `json:"release_date"`
	Status             domain.ReleaseStatus      `json:"status"`
	ModerationStatus   domain.ModerationStatus   `json:"moderation_status"`
	DistributionStatus domain.DistributionStatus `json:"distribution_status"`
	ReleaseType        domain.ReleaseType        `json:"release_type"`
	Genre              *string                   `json:"genre"`
	Description        *string                   `json:"description"`
	CoverArtURL        *string                   `json:"cover_art_url"`
	UPC                *string                   `json:"upc"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`

	// Expansions
	Tracks []TrackResponse `json:"tracks,omitempty"`
}

// TrackResponse represents a track
type TrackResponse struct {
	ID          uuid.UUID `json:"id"`
	ReleaseID   uuid.UUID `json:"release_id"`
	Title       string    `json:"title"`
	TrackNumber int       `json:"track_number"`
	Duration    *int      `json:"duration"`
	AudioURL    *string   `json:"audio_url"`
	ISRC        *string   `json:"isrc"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReleaseListResponse represents the releases of an artist
type ReleaseListResponse struct {
	Releases []ReleaseResponse `json:"items"`
	Total    int               `json:"total"`
}

// TrackListResponse represents the tracks of a release
type TrackListResponse struct {
	Tracks []TrackResponse `json:"items"`
	Total  int             `json:"total"`
}

// PlatformStreamsResponse is the stream total of a release on one platform
type PlatformStreamsResponse struct {
	Platform string `json:"platform"`
	Streams  int64  `json:"streams"`
}

// ReleaseStreamsResponse is the streaming summary of a release
type ReleaseStreamsResponse struct {
	ReleaseID    uuid.UUID                 `json:"release_id"`
	TotalStreams int64                     `json:"total_streams"`
	Platforms    []PlatformStreamsResponse `json:"platforms"`
}

// MapReleaseToDTO maps a schema.Release to ReleaseResponse
func MapReleaseToDTO(r *schema.Release) *ReleaseResponse {
	if r == nil {
		return nil
	}

	resp := &ReleaseResponse{
		ID:                 r.ID,
		ArtistID:           r.ArtistID,
		Title:              r.Title,
		ReleaseDate:        time.Time(r.ReleaseDate).Format(domain.DateLayout),
		Status:             r.Status,
		ModerationStatus:   r.ModerationStatus,
		DistributionStatus: r.DistributionStatus,
		ReleaseType:        r.ReleaseType,
		Genre:              r.Genre,
		Description:        r.Description,
		CoverArtURL:        r.CoverArtURL,
		UPC:                r.UPC,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if len(r.Tracks) > 0 {
		resp.Tracks = MapTracksToDTO(r.Tracks)
	}
	return resp
}

// MapReleasesToDTO maps releases to a list response
func MapReleasesToDTO(releases []schema.Release) *ReleaseListResponse {
	items := make([]ReleaseResponse, 0, len(releases))
	for i := range releases {
		items = append(items, *MapReleaseToDTO(&releases[i]))
	}
	return &ReleaseListResponse{Releases: items, Total: len(items)}
}

// MapTrackToDTO maps a schema.Track to TrackResponse
func MapTrackToDTO(t *schema.Track) *TrackResponse {
	if t == nil {
		return nil
	}
	return &TrackResponse{
		ID:          t.ID,
		ReleaseID:   t.ReleaseID,
		Title:       t.Title,
		TrackNumber: t.TrackNumber,
		Duration:    t.Duration,
		AudioURL:    t.AudioURL,
		ISRC:        t.ISRC,
		CreatedAt:   t.CreatedAt,
	}
}

// MapTracksToDTO maps tracks in their stored order
func MapTracksToDTO(tracks []schema.Track) []TrackResponse {
	items := make([]TrackResponse, 0, len(tracks))
	for i := range tracks {
		items = append(items, *MapTrackToDTO(&tracks[i]))
	}
	return items
}

// MapReleaseStreamsToDTO maps per-platform totals to the release streaming summary
func MapReleaseStreamsToDTO(releaseID uuid.UUID, totals []store.PlatformStreamTotal) *ReleaseStreamsResponse {
	resp := &ReleaseStreamsResponse{
		ReleaseID: releaseID,
		Platforms: make([]PlatformStreamsResponse, 0, len(totals)),
	}
	for _, t := range totals {
		resp.TotalStreams += t.Streams
		resp.Platforms = append(resp.Platforms, PlatformStreamsResponse{Platform: t.Platform, Streams: t.Streams})
	}
	return resp
}
