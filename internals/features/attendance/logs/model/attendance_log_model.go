package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeCheckin  = "checkin"
	TypeCheckout = "checkout"
)

// AttendanceLogModel is an immutable fact written by the scan/manual-entry
// flow. Rows are never updated; the only delete path is orphan cleanup.
type AttendanceLogModel struct {
	LogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	EmployeeID *uuid.UUID `gorm:"type:uuid;index;column:employee_id" json:"employee_id,omitempty"`

	// Free-text QR payload as scanned. May hold an employee id, an event id
	// buried in a badge string, or garbage.
	QRContent *string `gorm:"column:qr_content" json:"qr_content,omitempty"`

	Type      string    `gorm:"not null;column:type"                json:"type"`
	CreatedAt time.Time `gorm:"not null;index;column:created_at"    json:"created_at"`

	Note   *string `gorm:"column:note" json:"note,omitempty"`
	Manual bool    `gorm:"not null;default:false;column:manual" json:"manual"`

	EventID *uuid.UUID `gorm:"type:uuid;column:event_id" json:"event_id,omitempty"`

	// Whatever else the scanner sent (device id, firmware, geo).
	RawPayload datatypes.JSON `gorm:"type:jsonb;column:raw_payload" json:"raw_payload,omitempty"`
}

func (AttendanceLogModel) TableName() string { return "attendance_logs" }
