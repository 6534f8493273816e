package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityType enumerates auditable event kinds.
type ActivityType string

const (
	ActivityLogin            ActivityType = "login"
	ActivityRegister         ActivityType = "register"
	ActivityArticleCreated   ActivityType = "article_created"
	ActivityArticleUpdated   ActivityType = "article_updated"
	ActivityArticleDeleted   ActivityType = "article_deleted"
	ActivityArticlePublished ActivityType = "article_published"
	ActivityUserUpdated      ActivityType = "user_updated"
	ActivityUserDeleted      ActivityType = "user_deleted"
	ActivityRoleCreated      ActivityType = "role_created"
	ActivityRoleUpdated      ActivityType = "role_updated"
	ActivityRoleDeleted      ActivityType = "role_deleted"
	ActivityMessageReceived  ActivityType = "message_received"
)

// JSONMap stores an arbitrary metadata bag in a JSON column.
type JSONMap map[string]interface{}

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
}

// Activity is an append-only audit log entry. Entries are never updated
// or deleted by the system itself.
type Activity struct {
	ID          uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	Type        ActivityType `json:"type" gorm:"type:varchar(50);not null;index"`
	ActorID     *uuid.UUID   `json:"actor_id,omitempty" gorm:"type:char(36);index"`
	ActorName   string       `json:"actor_name" gorm:"size:255"`
	Description string       `json:"description" gorm:"size:512"`
	Metadata    JSONMap      `json:"metadata,omitempty" gorm:"type:json"`
	IP          string       `json:"ip" gorm:"size:64"`
	UserAgent   string       `json:"user_agent" gorm:"size:512"`
	CreatedAt   time.Time    `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
