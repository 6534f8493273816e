package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is an in-app alert shown in the admin dashboard.
// A nil RecipientID means the notification is visible to every user.
type Notification struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty" gorm:"type:char(36);index"`
	Type        string     `json:"type" gorm:"size:50;not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Body        string     `json:"body" gorm:"size:512"`
	Read        bool       `json:"read" gorm:"default:false;index"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
