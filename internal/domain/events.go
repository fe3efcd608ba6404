package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is published whenever an activity entry is recorded
type ActivityEvent struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	ActivityType ActivityType    `json:"activity_type"`
	Icon         string          `json:"icon"`
	Title        string          `json:"title"`
	ActivityTime *time.Time      `json:"activity_time,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
