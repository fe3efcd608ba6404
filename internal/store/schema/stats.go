package schema

import (
	"time"

	"github.com/google/uuid"
)

// DashboardStats represents the dashboard_stats table - the per-user headline totals
type DashboardStats struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the owning profile; a unique index keeps one row per user
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex"`
	// TotalStreams is the all-platform stream count
	TotalStreams int64 `gorm:"column:total_streams;not null;default:0"`
	// StreamChange is the period-over-period stream delta in percent
	StreamChange float64 `gorm:"column:stream_change;not null;default:0"`
	// TotalRevenue is the accrued revenue in USD
	TotalRevenue float64 `gorm:"column:total_revenue;not null;default:0;type:numeric(14,2)"`
	// RevenueChange is the period-over-period revenue delta in percent
	RevenueChange float64 `gorm:"column:revenue_change;not null;default:0"`
	// TotalAudience is the unique listener count
	TotalAudience int64 `gorm:"column:total_audience;not null;default:0"`
	// AudienceChange is the period-over-period audience delta in percent
	AudienceChange float64 `gorm:"column:audience_change;not null;default:0"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last refresh; the newest row wins when duplicates exist
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DashboardStats model
func (DashboardStats) TableName() string {
	return "dashboard_stats"
}

// PlatformStats represents the platform_stats table - stream share per platform
type PlatformStats struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the owning profile
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_platform_stats_user_platform,priority:1"`
	// PlatformName is the streaming platform (e.g., "Spotify")
	PlatformName string `gorm:"column:platform_name;not null;type:text;uniqueIndex:idx_platform_stats_user_platform,priority:2"`
	// Streams is the absolute stream count on the platform
	Streams int64 `gorm:"column:streams;not null;default:0"`
	// Percentage is the platform's share of all streams
	Percentage float64 `gorm:"column:percentage;not null;default:0"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PlatformStats model
func (PlatformStats) TableName() string {
	return "platform_stats"
}

// CountryStats represents the country_stats table - listener share per country
type CountryStats struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the owning profile
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_country_stats_user_country,priority:1"`
	// CountryName is the listener country
	CountryName string `gorm:"column:country_name;not null;type:text;uniqueIndex:idx_country_stats_user_country,priority:2"`
	// Listeners is the absolute listener count in the country
	Listeners int64 `gorm:"column:listeners;not null;default:0"`
	// Percentage is the country's share of all listeners
	Percentage float64 `gorm:"column:percentage;not null;default:0"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CountryStats model
func (CountryStats) TableName() string {
	return "country_stats"
}

// TrackStats represents the track_stats table - the per-user top tracks leaderboard.
// Rows are keyed by track name and are not linked to the tracks table.
type TrackStats struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID references the owning profile
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_track_stats_user_track,priority:1"`
	// TrackName is the leaderboard entry name
	TrackName string `gorm:"column:track_name;not null;type:text;uniqueIndex:idx_track_stats_user_track,priority:2"`
	// Streams is the stream count used for ranking
	Streams int64 `gorm:"column:streams;not null;default:0"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TrackStats model
func (TrackStats) TableName() string {
	return "track_stats"
}
