package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel is the roster row. Internal employees carry store/position/
// sector/start date; external ones carry only a role (STAFF, SEGURANÇA, ...).
// The either-or rule is enforced at the DTO boundary, not by the schema.
type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	CPF  string `gorm:"uniqueIndex;not null;column:cpf"  json:"cpf"`
	Name string `gorm:"not null;column:name"             json:"name"`

	IsInternal bool `gorm:"not null;default:false;column:isInternal" json:"isInternal"`

	Store     *string    `gorm:"column:store"     json:"store,omitempty"`
	Position  *string    `gorm:"column:position"  json:"position,omitempty"`
	Sector    *string    `gorm:"column:sector"    json:"sector,omitempty"`
	StartDate *time.Time `gorm:"type:date;column:startDate" json:"startDate,omitempty"`

	Role *string `gorm:"column:role" json:"role,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EmployeeModel) TableName() string { return "employees" }
