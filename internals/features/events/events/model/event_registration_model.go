package model

import (
	"time"

	"github.com/google/uuid"
)

type EventRegistrationModel struct {
	RegistrationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	EventID    uuid.UUID `gorm:"type:uuid;not null;index;column:event_id"    json:"event_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index;column:employee_id" json:"employee_id"`

	RegisteredAt time.Time `gorm:"column:registered_at;autoCreateTime" json:"registered_at"`
	Status       string    `gorm:"not null;default:confirmed;column:status" json:"status"`
}

func (EventRegistrationModel) TableName() string { return "event_registrations" }
