package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleStatus represents the publication state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article is a piece of content on the marketing site.
type Article struct {
	ID          uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string         `json:"title" gorm:"size:255;not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Excerpt     string         `json:"excerpt" gorm:"size:512"`
	Content     string         `json:"content" gorm:"type:longtext"`
	CoverImage  string         `json:"cover_image,omitempty" gorm:"size:512"`
	Status      ArticleStatus  `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	CategoryID  *uuid.UUID     `json:"category_id,omitempty" gorm:"type:char(36);index"`
	AuthorID    uuid.UUID      `json:"author_id" gorm:"type:char(36);not null;index"`
	Views       int64          `json:"views" gorm:"default:0"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
