package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Editor",
			expected: "editor",
		},
		{
			name:     "spaces become hyphens",
			input:    "Content Manager",
			expected: "content-manager",
		},
		{
			name:     "whitespace runs collapse",
			input:    "Content   Manager",
			expected: "content-manager",
		},
		{
			name:     "special characters are stripped",
			input:    "Ops & Support!",
			expected: "ops-support",
		},
		{
			name:     "leading and trailing whitespace",
			input:    "  News Desk  ",
			expected: "news-desk",
		},
		{
			name:     "digits survive",
			input:    "Tier 2 Support",
			expected: "tier-2-support",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
