package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/indietrack/artist-dashboard/internal/api/shared/dto"
)

// ListReleases returns the artist's releases, newest first
func (h *handler) ListReleases(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	releases, err := h.releases.ListReleases(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list releases")
		return
	}

	c.JSON(http.StatusOK, dto.MapReleasesToDTO(releases))
}

// CreateRelease creates a release
func (h *handler) CreateRelease(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	var req dto.CreateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	created, err := h.releases.CreateRelease(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		respondError(c, err, "Failed to create release")
		return
	}

	c.JSON(http.StatusCreated, dto.MapReleaseToDTO(created))
}

// GetRelease returns a release with its tracks
func (h *handler) GetRelease(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	r, err := h.releases.GetRelease(c.Request.Context(), userID, releaseID)
	if err != nil {
		respondError(c, err, "Failed to get release", zap.String("releaseID", releaseID.String()))
		return
	}

	tracks, err := h.releases.ListTracks(c.Request.Context(), userID, releaseID)
	if err != nil {
		respondError(c, err, "Failed to list tracks", zap.String("releaseID", releaseID.String()))
		return
	}
	r.Tracks = tracks

	c.JSON(http.StatusOK, dto.MapReleaseToDTO(r))
}

// UpdateRelease applies release changes, enforcing the status transition table
func (h *handler) UpdateRelease(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	var req dto.UpdateReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.releases.UpdateRelease(c.Request.Context(), req.ToInput(userID, releaseID))
	if err != nil {
		respondError(c, err, "Failed to update release", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.MapReleaseToDTO(updated))
}

// ListTracks returns the tracks of a release
func (h *handler) ListTracks(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	tracks, err := h.releases.ListTracks(c.Request.Context(), userID, releaseID)
	if err != nil {
		respondError(c, err, "Failed to list tracks", zap.String("releaseID", releaseID.String()))
		return
	}

	items := dto.MapTracksToDTO(tracks)
	c.JSON(http.StatusOK, dto.TrackListResponse{Tracks: items, Total: len(items)})
}

// CreateTrack adds a track to a release
func (h *handler) CreateTrack(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	var req dto.CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	track, err := h.releases.CreateTrack(c.Request.Context(), req.ToInput(userID, releaseID))
	if err != nil {
		respondError(c, err, "Failed to create track", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusCreated, dto.MapTrackToDTO(track))
}

// GetReleaseStreams returns the per-platform streaming summary of a release
func (h *handler) GetReleaseStreams(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	totals, err := h.analytics.GetReleaseStreams(c.Request.Context(), userID, releaseID)
	if err != nil {
		respondError(c, err, "Failed to get release streams", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.MapReleaseStreamsToDTO(releaseID, totals))
}

// ApplyModeration records the review decision for a release
func (h *handler) ApplyModeration(c *gin.Context) {
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.releases.ApplyModeration(c.Request.Context(), releaseID, req.Decision)
	if err != nil {
		respondError(c, err, "Failed to apply moderation", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.MapReleaseToDTO(updated))
}

// UpdateDistribution records the distribution state of a release
func (h *handler) UpdateDistribution(c *gin.Context) {
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	var req dto.DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	updated, err := h.releases.UpdateDistribution(c.Request.Context(), releaseID, req.Status, req.UPC)
	if err != nil {
		respondError(c, err, "Failed to update distribution", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusOK, dto.MapReleaseToDTO(updated))
}

// IngestStreams stores reported daily stream counts for a release
func (h *handler) IngestStreams(c *gin.Context) {
	releaseID, ok := parseReleaseID(c)
	if !ok {
		return
	}

	var req dto.IngestStreamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	stored, err := h.analytics.IngestStreams(c.Request.Context(), releaseID, req.ToReports())
	if err != nil {
		respondError(c, err, "Failed to ingest streams", zap.String("releaseID", releaseID.String()))
		return
	}

	c.JSON(http.StatusCreated, dto.IngestStreamsResponse{Stored: stored})
}
