package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/indietrack/artist-dashboard/internal/api/shared/dto"
)

// GetDashboard returns stats, activity and recent releases
func (h *handler) GetDashboard(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	dashboard, err := h.analytics.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.MapDashboardToDTO(dashboard))
}

// GetAnalytics returns the analytics breakdowns and the monthly stream timeline
func (h *handler) GetAnalytics(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	params, err := ParseAnalyticsQuery(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	if err := params.Validate(); err != nil {
		respondQueryError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.analytics.SeedIfAbsent(ctx, userID); err != nil {
		respondError(c, err, "Failed to seed analytics")
		return
	}

	stats, err := h.analytics.GetDashboardStats(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to get dashboard stats")
		return
	}
	platforms, err := h.analytics.GetPlatformStats(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to get platform stats")
		return
	}
	countries, err := h.analytics.GetCountryStats(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to get country stats")
		return
	}
	tracks, err := h.analytics.GetTrackStats(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to get track stats")
		return
	}
	monthly, err := h.analytics.GetMonthlyStreams(ctx, userID, params.Months)
	if err != nil {
		respondError(c, err, "Failed to get monthly streams")
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{
		Stats:          dto.MapDashboardStatsToDTO(stats),
		Platforms:      dto.MapPlatformStatsToDTO(platforms),
		Countries:      dto.MapCountryStatsToDTO(countries),
		TopTracks:      dto.MapTrackStatsToDTO(tracks),
		MonthlyStreams: dto.MapMonthlyStreamsToDTO(monthly),
	})
}

// ListActivities returns the newest activity entries
func (h *handler) ListActivities(c *gin.Context) {
	userID, ok := userIDOf(c)
	if !ok {
		return
	}

	params, err := ParseListActivitiesQuery(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}
	if err := params.Validate(); err != nil {
		respondQueryError(c, err)
		return
	}

	activities, err := h.activity.List(c.Request.Context(), userID, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list activity")
		return
	}

	c.JSON(http.StatusOK, dto.ActivityListResponse{Activities: dto.MapActivitiesToDTO(activities)})
}
