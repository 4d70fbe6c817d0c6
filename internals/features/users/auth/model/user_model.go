package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`

	Username     string `gorm:"uniqueIndex;not null;column:username" json:"username"`
	PasswordHash string `gorm:"not null;column:password_hash"        json:"-"`
	Role         string `gorm:"not null;default:operator;column:role" json:"role"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string { return "users" }
