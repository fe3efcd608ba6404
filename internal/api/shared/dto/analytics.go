package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/indietrack/artist-dashboard/internal/analytics"
	"github.com/indietrack/artist-dashboard/internal/domain"
	"github.com/indietrack/artist-dashboard/internal/store/schema"
)

// DashboardStatsResponse represents the headline totals
type DashboardStatsResponse struct {
	TotalStreams   int64     `json:"total_streams"`
	StreamChange   float64   `json:"stream_change"`
	TotalRevenue   float64   `json:"total_revenue"`
	RevenueChange  float64   `json:"revenue_change"`
	TotalAudience  int64     `json:"total_audience"`
	AudienceChange float64   `json:"audience_change"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlatformStatsResponse represents the stream share of a platform
type PlatformStatsResponse struct {
	PlatformName string  `json:"platform_name"`
	Streams      int64   `json:"streams"`
	Percentage   float64 `json:"percentage"`
}

// CountryStatsResponse represents the listener share of a country
type CountryStatsResponse struct {
	CountryName string  `json:"country_name"`
	Listeners   int64   `json:"listeners"`
	Percentage  float64 `json:"percentage"`
}

// TrackStatsResponse represents a top tracks leaderboard entry
type TrackStatsResponse struct {
	TrackName string `json:"track_name"`
	Streams   int64  `json:"streams"`
}

// ActivityResponse represents an activity feed entry
type ActivityResponse struct {
	ID           uuid.UUID           `json:"id"`
	ActivityType domain.ActivityType `json:"activity_type"`
	Icon         string              `json:"icon"`
	Title        string              `json:"title"`
	ActivityTime time.Time           `json:"activity_time"`
	Metadata     json.RawMessage     `json:"metadata,omitempty"`
}

// ActivityListResponse represents the activity feed
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"items"`
}

// MonthlyStreamsResponse represents the streams of one calendar month
type MonthlyStreamsResponse struct {
	Month   string `json:"month"`
	Streams int64  `json:"streams"`
}

// DashboardResponse represents the dashboard page data
type DashboardResponse struct {
	Stats          *DashboardStatsResponse `json:"stats"`
	Platforms      []PlatformStatsResponse `json:"platforms"`
	Countries      []CountryStatsResponse  `json:"countries"`
	TopTracks      []TrackStatsResponse    `json:"top_tracks"`
	Activities     []ActivityResponse      `json:"activities"`
	RecentReleases []ReleaseResponse       `json:"recent_releases"`
}

// AnalyticsResponse represents the analytics page data
type AnalyticsResponse struct {
	Stats          *DashboardStatsResponse  `json:"stats"`
	Platforms      []PlatformStatsResponse  `json:"platforms"`
	Countries      []CountryStatsResponse   `json:"countries"`
	TopTracks      []TrackStatsResponse     `json:"top_tracks"`
	MonthlyStreams []MonthlyStreamsResponse `json:"monthly_streams"`
}

// MapDashboardStatsToDTO maps the headline totals; nil when no stats exist
func MapDashboardStatsToDTO(s *schema.DashboardStats) *DashboardStatsResponse {
	if s == nil {
		return nil
	}
	return &DashboardStatsResponse{
		TotalStreams:   s.TotalStreams,
		StreamChange:   s.StreamChange,
		TotalRevenue:   s.TotalRevenue,
		RevenueChange:  s.RevenueChange,
		TotalAudience:  s.TotalAudience,
		AudienceChange: s.AudienceChange,
		UpdatedAt:      s.UpdatedAt,
	}
}

// MapPlatformStatsToDTO maps platform shares in their ranked order
func MapPlatformStatsToDTO(rows []schema.PlatformStats) []PlatformStatsResponse {
	items := make([]PlatformStatsResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, PlatformStatsResponse{PlatformName: r.PlatformName, Streams: r.Streams, Percentage: r.Percentage})
	}
	return items
}

// MapCountryStatsToDTO maps country shares in their ranked order
func MapCountryStatsToDTO(rows []schema.CountryStats) []CountryStatsResponse {
	items := make([]CountryStatsResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, CountryStatsResponse{CountryName: r.CountryName, Listeners: r.Listeners, Percentage: r.Percentage})
	}
	return items
}

// MapTrackStatsToDTO maps the leaderboard in its ranked order
func MapTrackStatsToDTO(rows []schema.TrackStats) []TrackStatsResponse {
	items := make([]TrackStatsResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, TrackStatsResponse{TrackName: r.TrackName, Streams: r.Streams})
	}
	return items
}

// MapActivityToDTO maps an activity entry; the display time falls back to the write time
func MapActivityToDTO(a *schema.UserActivity) ActivityResponse {
	at := a.CreatedAt
	if a.ActivityTime != nil {
		at = *a.ActivityTime
	}
	resp := ActivityResponse{
		ID:           a.ID,
		ActivityType: a.ActivityType,
		Icon:         a.ActivityType.Icon(),
		Title:        a.Title,
		ActivityTime: at,
	}
	if len(a.Metadata) > 0 {
		resp.Metadata = json.RawMessage(a.Metadata)
	}
	return resp
}

// MapActivitiesToDTO maps activity entries in feed order
func MapActivitiesToDTO(rows []schema.UserActivity) []ActivityResponse {
	items := make([]ActivityResponse, 0, len(rows))
	for i := range rows {
		items = append(items, MapActivityToDTO(&rows[i]))
	}
	return items
}

// MapMonthlyStreamsToDTO maps the monthly timeline with months as YYYY-MM
func MapMonthlyStreamsToDTO(rows []analytics.MonthlyStreams) []MonthlyStreamsResponse {
	items := make([]MonthlyStreamsResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, MonthlyStreamsResponse{Month: r.Month.Format("2006-01"), Streams: r.Streams})
	}
	return items
}

// MapDashboardToDTO maps the dashboard composition
func MapDashboardToDTO(d *analytics.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Stats:          MapDashboardStatsToDTO(d.Stats),
		Platforms:      MapPlatformStatsToDTO(d.Platforms),
		Countries:      MapCountryStatsToDTO(d.Countries),
		TopTracks:      MapTrackStatsToDTO(d.Tracks),
		Activities:     MapActivitiesToDTO(d.Activities),
		RecentReleases: MapReleasesToDTO(d.RecentReleases).Releases,
	}
}
