package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/indietrack/artist-dashboard/internal/domain"
)

// Release represents the releases table - a single, EP, album or compilation owned by one artist
type Release struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// ArtistID references the owning profile
	ArtistID uuid.UUID `gorm:"column:artist_id;not null;type:uuid;index:idx_releases_artist_created,priority:1"`
	// Title is the release title
	Title string `gorm:"column:title;not null;type:text"`
	// ReleaseDate is the planned or actual street date
	ReleaseDate datatypes.Date `gorm:"column:release_date;not null;type:date"`
	// Status is the lifecycle state (draft, scheduled, published, rejected)
	Status domain.ReleaseStatus `gorm:"column:status;not null;type:text;default:draft"`
	// ModerationStatus is the internal review gate (pending, approved, rejected)
	ModerationStatus domain.ModerationStatus `gorm:"column:moderation_status;not null;type:text;default:pending"`
	// DistributionStatus is the delivery pipeline state (not_started, in_progress, completed, failed)
	DistributionStatus domain.DistributionStatus `gorm:"column:distribution_status;not null;type:text;default:not_started"`
	// Genre is the release genre
	Genre *string `gorm:"column:genre;type:text"`
	// Description is the free-form release description (at most 1000 characters)
	Description *string `gorm:"column:description;type:text"`
	// CoverArtURL is the object-storage reference for the artwork
	CoverArtURL *string `gorm:"column:cover_art_url;type:text"`
	// UPC is the universal product code assigned during distribution
	UPC *string `gorm:"column:upc;type:text"`
	// ReleaseType is the release format (single, ep, album, compilation)
	ReleaseType domain.ReleaseType `gorm:"column:release_type;not null;type:text;default:single"`
	// CreatedAt is the timestamp when the release was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_releases_artist_created,priority:2,sort:desc"`
	// UpdatedAt is the timestamp of the last change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Tracks []Track `gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Release model
func (Release) TableName() string {
	return "releases"
}

// Track represents the tracks table - one recording on a release
type Track struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// ReleaseID references the parent release; deleting the release cascades
	ReleaseID uuid.UUID `gorm:"column:release_id;not null;type:uuid;uniqueIndex:idx_tracks_release_number,priority:1"`
	// Title is the track title
	Title string `gorm:"column:title;not null;type:text"`
	// TrackNumber is the 1-based position on the release, unique per release
	TrackNumber int `gorm:"column:track_number;not null;uniqueIndex:idx_tracks_release_number,priority:2"`
	// Duration is the track length in seconds
	Duration *int `gorm:"column:duration"`
	// AudioURL is the object-storage reference for the master audio
	AudioURL *string `gorm:"column:audio_url;type:text"`
	// ISRC is the international standard recording code
	ISRC *string `gorm:"column:isrc;type:text"`
	// CreatedAt is the timestamp when the track was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}

// StreamingStat represents the streaming_stats table - daily stream counts ingested from platforms
type StreamingStat struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// ReleaseID references the release the streams belong to
	ReleaseID *uuid.UUID `gorm:"column:release_id;type:uuid"`
	// TrackID references the track the streams belong to, when reported per track
	TrackID *uuid.UUID `gorm:"column:track_id;type:uuid"`
	// Platform is the reporting platform name
	Platform string `gorm:"column:platform;not null;type:text"`
	// Date is the reporting day
	Date datatypes.Date `gorm:"column:date;not null;type:date"`
	// StreamCount is the number of streams on that day
	StreamCount int64 `gorm:"column:stream_count;not null;default:0"`
}

// TableName specifies the table name for the StreamingStat model
func (StreamingStat) TableName() string {
	return "streaming_stats"
}
