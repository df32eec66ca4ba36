package config

import (
	"os"
	"strconv"
	"time"

	"reeladmin/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Admin    AdminConfig
	Game     GameConfig
	Editor   EditorConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL          string
	SSLMode      string
	MaxOpenConns int
}

// AdminConfig holds admin panel server settings
type AdminConfig struct {
	Port      string
	SecretKey string
	GinMode   string
}

// GameConfig holds the player-facing API server settings
type GameConfig struct {
	Port string
}

// EditorConfig holds zone pool-editor session settings
type EditorConfig struct {
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{}

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	cfg.Database = DatabaseConfig{
		URL:          url,
		SSLMode:      getEnvOrDefault("SSL_MODE", "disable"),
		MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
	}

	secret := os.Getenv("ADMIN_SECRET_KEY")
	if secret == "" {
		return nil, errors.ConfigInvalid("ADMIN_SECRET_KEY is required")
	}
	cfg.Admin = AdminConfig{
		Port:      getEnvOrDefault("ADMIN_PORT", "8080"),
		SecretKey: secret,
		GinMode:   getEnvOrDefault("GIN_MODE", "release"),
	}

	cfg.Game = GameConfig{
		Port: getEnvOrDefault("GAME_PORT", "8081"),
	}

	cfg.Editor = EditorConfig{
		SessionTTL:    getEnvDurationOrDefault("EDITOR_SESSION_TTL", 30*time.Minute),
		SweepInterval: getEnvDurationOrDefault("EDITOR_SWEEP_INTERVAL", 5*time.Minute),
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDurationOrDefault(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
