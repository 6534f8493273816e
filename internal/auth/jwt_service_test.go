package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  "editor",
	}
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", "1h", "24h")
	user := testUser()

	token, err := svc.IssueAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", "1h", "24h")
	user := testUser()

	token, err := svc.IssueRefreshToken(user)
	assert.NoError(t, err)

	claims, err := svc.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestTokenService_WrongKeyRejected(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", "1h", "24h")
	other := NewTokenService("different-secret", "refresh-secret", "1h", "24h")

	token, err := svc.IssueAccessToken(testUser())
	assert.NoError(t, err)

	claims, err := other.VerifyAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// A token of one kind must never verify as the other kind.
func TestTokenService_CrossKindRejected(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", "1h", "24h")
	user := testUser()

	access, err := svc.IssueAccessToken(user)
	assert.NoError(t, err)
	refresh, err := svc.IssueRefreshToken(user)
	assert.NoError(t, err)

	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_ExpiredRejected(t *testing.T) {
	svc := &TokenService{
		accessSecret:  []byte("access-secret"),
		refreshSecret: []byte("refresh-secret"),
		accessTTL:     -time.Minute,
		refreshTTL:    time.Hour,
	}

	token, err := svc.IssueAccessToken(testUser())
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenService_GarbageRejected(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", "1h", "24h")
	_, err := svc.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"days", "7d", 7 * 24 * time.Hour},
		{"hours", "12h", 12 * time.Hour},
		{"minutes", "30m", 30 * time.Minute},
		{"seconds suffix", "45s", 45 * time.Second},
		{"bare number is seconds", "90", 90 * time.Second},
		{"empty falls back", "", DefaultExpiry},
		{"garbage falls back", "soon", DefaultExpiry},
		{"negative falls back", "-5h", DefaultExpiry},
		{"zero falls back", "0d", DefaultExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseExpiry(tt.input))
		})
	}
}
