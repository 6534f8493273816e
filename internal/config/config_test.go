package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("development fills placeholder secrets", func(t *testing.T) {
		cfg := &Config{AppEnv: "development"}
		assert.NoError(t, cfg.Validate())
		assert.NotEmpty(t, cfg.AccessSecret)
		assert.NotEmpty(t, cfg.RefreshSecret)
		assert.NotEqual(t, cfg.AccessSecret, cfg.RefreshSecret)
	})

	t.Run("production requires both secrets", func(t *testing.T) {
		cfg := &Config{AppEnv: "production"}
		assert.Error(t, cfg.Validate())

		cfg.AccessSecret = "access"
		assert.Error(t, cfg.Validate())

		cfg.RefreshSecret = "refresh"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("production rejects identical secrets", func(t *testing.T) {
		cfg := &Config{
			AppEnv:        "production",
			AccessSecret:  "same-secret",
			RefreshSecret: "same-secret",
		}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "SERVER_PORT", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "7d", cfg.AccessExpiry)
	assert.Equal(t, "30d", cfg.RefreshExpiry)
}
