package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slide is a carousel entry on the marketing site home page.
// Position determines display order, lowest first.
type Slide struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Subtitle  string         `json:"subtitle" gorm:"size:512"`
	Image     string         `json:"image" gorm:"size:512;not null"`
	LinkURL   string         `json:"link_url,omitempty" gorm:"size:512"`
	Position  int            `json:"position" gorm:"not null;index"`
	Active    bool           `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Slide) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
