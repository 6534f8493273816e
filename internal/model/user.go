package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStatus represents the account status of a user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents an authenticated user of the admin dashboard.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string         `json:"role" gorm:"size:100;default:'viewer';index"`
	Status       UserStatus     `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Avatar       string         `json:"avatar,omitempty" gorm:"size:512"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	ResetToken   string         `json:"-" gorm:"size:255"`
	ResetExpiry  *time.Time     `json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the user may authenticate or stay authorized.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
