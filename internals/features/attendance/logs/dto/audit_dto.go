package dto

import (
	"strings"
	"time"
)

// PerformRequest is the manual register payload from the audit screen or a
// scanner terminal. Either employee_id or qr_content must identify the
// employee; type is optional and inferred from the last log when absent.
type PerformRequest struct {
	EmployeeID *string    `json:"employeeId"`
	QRContent  *string    `json:"qrContent"`
	Manual     bool       `json:"manual"`
	Type       *string    `json:"type" validate:"omitempty,oneof=checkin checkout"`
	Timestamp  *time.Time `json:"timestamp"`
	Reason     *string    `json:"reason"`
}

// Normalize drops empty strings and the literal "null" some clients send.
func (r *PerformRequest) Normalize() {
	sanitize(&r.EmployeeID)
	sanitize(&r.QRContent)
	sanitize(&r.Reason)
}

func sanitize(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" || v == "null" {
		*pp = nil
		return
	}
	*pp = &v
}
