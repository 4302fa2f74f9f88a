package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleStudent  Role = "STUDENT"
	RoleReviewer Role = "REVIEWER"
	RoleAdmin    Role = "ADMIN"
)

// User is the identity record the auth middleware resolves a bearer token to.
// Token issuance/rotation is an auth-service concern; this side only reads.
type User struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email  string `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	Name   string `gorm:"column:name;size:200" json:"name"`
	Role   Role   `gorm:"column:role;size:20;not null;default:'STUDENT'" json:"role"`
	// Opaque bearer token; resolved by the auth middleware.
	APIToken string `gorm:"column:api_token;size:64;index" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
