package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventModel has no hard linkage to attendance logs; log-to-event attribution
// is inferred at report time.
type EventModel struct {
	EventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Name        string  `gorm:"not null;column:name" json:"name"`
	Location    *string `gorm:"column:location"      json:"location,omitempty"`
	Description *string `gorm:"column:description"   json:"description,omitempty"`

	// end_date may equal start_date (single day) or exceed it (multi-day).
	StartDate time.Time `gorm:"not null;column:start_date" json:"start_date"`
	EndDate   time.Time `gorm:"not null;column:end_date"   json:"end_date"`

	OrganizerTags pq.StringArray `gorm:"type:text[];column:organizer_tags" json:"organizer_tags,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string { return "events" }
