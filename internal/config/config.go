// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full configuration surface of the service. Everything
// comes from environment variables; a .env file is honored when present.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// BaseURL is the externally reachable base URL of this service,
	// used for the reply dispatcher's loopback calls.
	BaseURL string

	// SQLitePath is the path to the SQLite database file.
	SQLitePath string

	// IdentityURL is the base URL of the identity provider.
	IdentityURL string

	// IdentityAPIKey is the provider's public API key, sent alongside
	// caller tokens.
	IdentityAPIKey string

	// GeminiAPIKey authenticates against the generation backend.
	GeminiAPIKey string

	// GeminiModel selects the generation model. Empty picks the default.
	GeminiModel string

	// SystemPrompt is the reply bot's fixed system instruction,
	// supplied once at startup.
	SystemPrompt string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:           8080,
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		SQLitePath:     getEnv("SQLITE_DB_PATH", "./confessd.db"),
		IdentityURL:    os.Getenv("IDENTITY_URL"),
		IdentityAPIKey: os.Getenv("IDENTITY_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		SystemPrompt:   os.Getenv("SYSTEM_PROMPT"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if cfg.IdentityURL == "" {
		return nil, fmt.Errorf("IDENTITY_URL is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
