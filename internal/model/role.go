package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WildcardPermissions are sentinel permission strings granting unconditional access.
var WildcardPermissions = []string{"*", "all"}

// StringList stores a JSON array of strings in a single column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// Contains reports whether s is a member of the list.
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// Role groups permissions under a named, slugged identifier.
// System roles are seeded at startup and cannot be changed through the API.
type Role struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string     `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string     `json:"description" gorm:"size:255"`
	Permissions StringList `json:"permissions" gorm:"type:json"`
	IsSystem    bool       `json:"is_system" gorm:"default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// HasWildcard reports whether the role carries a wildcard permission.
func (r *Role) HasWildcard() bool {
	for _, w := range WildcardPermissions {
		if r.Permissions.Contains(w) {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the role grants at least one of the
// required permissions (any-of semantics).
func (r *Role) HasAnyPermission(required ...string) bool {
	if r.HasWildcard() {
		return true
	}
	for _, p := range required {
		if r.Permissions.Contains(p) {
			return true
		}
	}
	return false
}
