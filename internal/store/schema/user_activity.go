package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/indietrack/artist-dashboard/internal/domain"
)

// UserActivity represents the user_activity table - the append-only feed of user-visible events
type UserActivity struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// UserID references the owning profile
	UserID uuid.UUID `gorm:"column:user_id;not null;type:uuid;uniqueIndex:idx_user_activity_user_seed,priority:1"`
	// ActivityType selects the display icon
	ActivityType domain.ActivityType `gorm:"column:activity_type;not null;type:text"`
	// Title is the human-readable feed line
	Title string `gorm:"column:title;not null;type:text"`
	// ActivityTime is when the event happened; nil falls back to CreatedAt for ordering
	ActivityTime *time.Time `gorm:"column:activity_time;type:timestamptz"`
	// Metadata carries structured context for the event (e.g., release id)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// SeedKey is set only for default rows written by analytics seeding, making them idempotent
	SeedKey *string `gorm:"column:seed_key;type:text;uniqueIndex:idx_user_activity_user_seed,priority:2"`
	// CreatedAt is the timestamp when the row was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UserActivity model
func (UserActivity) TableName() string {
	return "user_activity"
}
