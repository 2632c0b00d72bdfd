package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/nextx/admin-api/pkg/jwtx"
)

type Config struct {
	AccessSecret  string        // Required: HMAC secret for the access token domain
	RefreshSecret string        // Required: HMAC secret for the refresh token domain
	AccessTTL     time.Duration // Optional: access token lifetime (default: 60m)
	RefreshTTL    time.Duration // Optional: refresh token lifetime (default: 744h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./admin.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

var ErrMissingSecrets = errors.New("app: ADMIN_ACCESS_SECRET and ADMIN_REFRESH_SECRET must be set")

func LoadConfig() (Config, error) {
	cfg := Config{
		AccessSecret:        os.Getenv("ADMIN_ACCESS_SECRET"),
		RefreshSecret:       os.Getenv("ADMIN_REFRESH_SECRET"),
		AccessTTL:           getEnvDurationOrDefault("ADMIN_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:          getEnvDurationOrDefault("ADMIN_REFRESH_TTL", jwtx.DefaultRefreshTokenTTL),
		DatabaseFile:        getEnvOrDefault("ADMIN_DATABASE_FILE", "admin.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The two domains must not share a secret, otherwise a refresh token
	// could be replayed as an access token.
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return Config{}, ErrMissingSecrets
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return Config{}, errors.New("app: access and refresh secrets must differ")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
