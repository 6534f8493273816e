package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv           string
	ServerPort       string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	AccessSecret     string
	AccessExpiry     string
	RefreshSecret    string
	RefreshExpiry    string
	UploadDir        string
	SwaggerHost      string
}

// Load builds Config from environment with sensible defaults. Secrets fall
// back to development-only values; Validate rejects them outside development.
func Load() *Config {
	return &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/pressroom?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		AccessExpiry:  getEnv("JWT_ACCESS_EXPIRY", "7d"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		RefreshExpiry: getEnv("JWT_REFRESH_EXPIRY", "30d"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
	}
}

// Validate fails fast on missing secrets outside development. In development
// unset secrets are filled with insecure placeholders so the server still boots.
func (c *Config) Validate() error {
	if c.AppEnv == "development" {
		if c.AccessSecret == "" {
			c.AccessSecret = "dev-access-secret"
		}
		if c.RefreshSecret == "" {
			c.RefreshSecret = "dev-refresh-secret"
		}
		return nil
	}
	if c.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET must be set when APP_ENV=%s", c.AppEnv)
	}
	if c.RefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET must be set when APP_ENV=%s", c.AppEnv)
	}
	if c.AccessSecret == c.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
