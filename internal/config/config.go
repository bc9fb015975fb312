package config

import (
	"errors"
	"os"
)

// Config collects every environment-driven setting in one place. It is built
// once in main and handed to the components that need it; nothing else in the
// codebase reads environment variables directly.
type Config struct {
	// Drive
	RootFolderID string // shared folder whose "Completed" subfolders are listed
	FolderName   string // display name shown in the dashboard header

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	AllowedEmailDomain string // e.g. "glean.com"; empty disables the domain check

	// Persistence. RedisURL present selects the remote key-value backend,
	// otherwise the two JSON documents below are used.
	RedisURL        string
	HiddenIDsPath   string
	CustomCardsPath string

	// Server
	ListenAddr  string
	FrontendURL string

	// Team registry
	TeamsPath string
}

// Load builds a Config from the process environment, applying local-dev
// defaults for everything that has a sensible one.
func Load() (*Config, error) {
	cfg := &Config{
		RootFolderID:       os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),
		FolderName:         getEnvOrDefault("GOOGLE_DRIVE_FOLDER_NAME", "Drive Files"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  getEnvOrDefault("GOOGLE_REDIRECT_URI", "http://localhost:8080/auth/google/callback"),
		AllowedEmailDomain: os.Getenv("ALLOWED_EMAIL_DOMAIN"),
		RedisURL:           os.Getenv("REDIS_URL"),
		HiddenIDsPath:      getEnvOrDefault("HIDDEN_IDS_PATH", "data/hidden.json"),
		CustomCardsPath:    getEnvOrDefault("CUSTOM_CARDS_PATH", "data/custom-cards.json"),
		ListenAddr:         getEnvOrDefault("LISTEN_ADDR", ":8080"),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		TeamsPath:          getEnvOrDefault("TEAMS_PATH", "data/teams.json"),
	}

	if cfg.RootFolderID == "" {
		return nil, errors.New("GOOGLE_DRIVE_FOLDER_ID is required")
	}

	return cfg, nil
}

// UseRedis reports whether the remote key-value backend should be used.
func (c *Config) UseRedis() bool {
	return c.RedisURL != ""
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
