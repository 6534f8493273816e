package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_HasWildcard(t *testing.T) {
	tests := []struct {
		name        string
		permissions StringList
		expected    bool
	}{
		{"star grants all", StringList{"*"}, true},
		{"all grants all", StringList{"all"}, true},
		{"star among others", StringList{"view_articles", "*"}, true},
		{"plain permissions", StringList{"view_articles", "edit_articles"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := Role{Permissions: tt.permissions}
			assert.Equal(t, tt.expected, role.HasWildcard())
		})
	}
}

func TestRole_HasAnyPermission(t *testing.T) {
	editor := Role{Permissions: StringList{"view_articles", "edit_articles"}}
	admin := Role{Permissions: StringList{"*"}}

	assert.True(t, editor.HasAnyPermission("edit_articles"))
	assert.True(t, editor.HasAnyPermission("manage_users", "view_articles"))
	assert.False(t, editor.HasAnyPermission("manage_users"))
	assert.False(t, editor.HasAnyPermission())

	// wildcard satisfies any requirement
	assert.True(t, admin.HasAnyPermission("manage_roles"))
	assert.True(t, admin.HasAnyPermission("anything_at_all"))
}
