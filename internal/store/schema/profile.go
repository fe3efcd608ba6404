package schema

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the profiles table - one artist identity per authenticated user
type Profile struct {
	// ID is the identity provider user id; profiles share the identity's primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// ArtistName is the public display name
	ArtistName string `gorm:"column:artist_name;not null;type:text"`
	// Bio is the free-form artist biography
	Bio *string `gorm:"column:bio;type:text"`
	// Genre is the artist's primary genre
	Genre *string `gorm:"column:genre;type:text"`
	// ProfileImageURL is the object-storage reference for the avatar
	ProfileImageURL *string `gorm:"column:profile_image_url;type:text"`
	// CreatedAt is the timestamp when the profile was provisioned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last profile edit
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	SocialLinks []SocialLink `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// SocialLink represents the social_links table - external links shown on an artist profile
type SocialLink struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// ProfileID references the owning profile
	ProfileID uuid.UUID `gorm:"column:profile_id;not null;type:uuid;uniqueIndex:idx_social_links_profile_platform,priority:1"`
	// Platform is the link target name (e.g., "instagram", "spotify")
	Platform string `gorm:"column:platform;not null;type:text;uniqueIndex:idx_social_links_profile_platform,priority:2"`
	// URL is the link address
	URL string `gorm:"column:url;not null;type:text"`
	// CreatedAt is the timestamp when the link was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SocialLink model
func (SocialLink) TableName() string {
	return "social_links"
}
