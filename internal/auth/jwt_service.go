package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "pressroom/internal/errors"
	"pressroom/internal/model"
)

// DefaultExpiry is used when an expiry string cannot be parsed.
const DefaultExpiry = time.Hour

// Claims represents JWT claims carried by both token kinds.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies access and refresh tokens. The two
// kinds are signed with independent secrets, so one can never pass
// verification in the other's place.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService builds a TokenService. Expiry strings accept s/m/h/d
// suffixes ("7d", "12h"); bare numbers are seconds; anything else falls
// back to one hour.
func NewTokenService(accessSecret, refreshSecret, accessExpiry, refreshExpiry string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     ParseExpiry(accessExpiry),
		refreshTTL:    ParseExpiry(refreshExpiry),
	}
}

// ParseExpiry converts a duration string like "7d" into a time.Duration.
func ParseExpiry(s string) time.Duration {
	if s == "" {
		return DefaultExpiry
	}
	unit := time.Second
	num := s
	switch s[len(s)-1] {
	case 's':
		num = s[:len(s)-1]
	case 'm':
		unit = time.Minute
		num = s[:len(s)-1]
	case 'h':
		unit = time.Hour
		num = s[:len(s)-1]
	case 'd':
		unit = 24 * time.Hour
		num = s[:len(s)-1]
	}
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return DefaultExpiry
	}
	return time.Duration(n) * unit
}

// IssueAccessToken signs a short-lived access token for the user.
func (s *TokenService) IssueAccessToken(user *model.User) (string, error) {
	return s.sign(user, s.accessSecret, s.accessTTL)
}

// IssueRefreshToken signs a longer-lived refresh token for the user.
func (s *TokenService) IssueRefreshToken(user *model.User) (string, error) {
	return s.sign(user, s.refreshSecret, s.refreshTTL)
}

// VerifyAccessToken checks signature and expiry of an access token.
func (s *TokenService) VerifyAccessToken(token string) (*Claims, error) {
	return s.verify(token, s.accessSecret)
}

// VerifyRefreshToken checks signature and expiry of a refresh token.
func (s *TokenService) VerifyRefreshToken(token string) (*Claims, error) {
	return s.verify(token, s.refreshSecret)
}

// AccessSecret exposes the raw access signing key for the route-level
// JWT middleware, which verifies with the same key.
func (s *TokenService) AccessSecret() []byte {
	return s.accessSecret
}

func (s *TokenService) sign(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// verify collapses every failure mode into ErrInvalidToken: callers must
// not be able to distinguish expired from tampered.
func (s *TokenService) verify(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
