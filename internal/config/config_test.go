package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("IDENTITY_URL", "https://auth.example")
	t.Setenv("GEMINI_API_KEY", "key-123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("SQLITE_DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SQLitePath != "./confessd.db" {
		t.Errorf("SQLitePath = %q", cfg.SQLitePath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://feed.example")
	t.Setenv("SYSTEM_PROMPT", "be kind")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.BaseURL != "https://feed.example" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SystemPrompt != "be kind" {
		t.Errorf("SystemPrompt = %q", cfg.SystemPrompt)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{
			name:  "Missing identity URL",
			unset: "IDENTITY_URL",
		},
		{
			name:  "Missing Gemini key",
			unset: "GEMINI_API_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("Load() succeeded without %s", tt.unset)
			}
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded with invalid PORT")
	}
}
