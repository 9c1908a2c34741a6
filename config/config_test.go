package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var configKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "CORS_ORIGINS", "MEDIA_ROOT", "MAX_UPLOAD_MB",
	"AUTH_ENABLED", "ADMIN_USERNAME", "ADMIN_PASSWORD", "JWT_ACCESS_TOKEN_TTL",
	"MONGODB_URI", "MONGODB_DATABASE", "MONGODB_TRANSACTIONS", "MONGODB_CONNECT_RETRIES",
	"LOG_LEVEL", "LOG_PRETTY",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		clearConfigEnv(t)

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 300, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "media", cfg.Storage.MediaRoot)
		assert.Equal(t, int64(20<<20), cfg.Storage.MaxUploadBytes)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, "admin", cfg.Auth.AdminUsername)
		assert.Empty(t, cfg.Auth.AdminPassword)
		assert.Equal(t, "camp_service", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Transactions)
		assert.Equal(t, 5, cfg.Database.ConnectRetries)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "50")
		t.Setenv("RATE_WINDOW", "30s")
		t.Setenv("MEDIA_ROOT", "/var/lib/camp/media")
		t.Setenv("MAX_UPLOAD_MB", "5")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("ADMIN_PASSWORD", "s3cret!")
		t.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")
		t.Setenv("MONGODB_TRANSACTIONS", "true")
		t.Setenv("MONGODB_DATABASE", "camp_test")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_PRETTY", "true")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "/var/lib/camp/media", cfg.Storage.MediaRoot)
		assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadBytes)
		assert.True(t, cfg.Auth.Enabled)
		assert.Equal(t, "s3cret!", cfg.Auth.AdminPassword)
		assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
		assert.True(t, cfg.Database.Transactions)
		assert.Equal(t, "camp_test", cfg.Database.DatabaseName)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("RATE_LIMIT", "invalid")
		t.Setenv("AUTH_ENABLED", "invalid")
		t.Setenv("RATE_WINDOW", "invalid")
		t.Setenv("MONGODB_CONNECT_RETRIES", "many")

		cfg := Load()

		assert.Equal(t, 300, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 5, cfg.Database.ConnectRetries)
	})
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty keeps local defaults",
			input:    "",
			expected: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		{
			name:  "appends trimmed origins",
			input: " https://estimates.example.com , ,https://admin.example.com",
			expected: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"https://estimates.example.com",
				"https://admin.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCORSOrigins(tt.input))
		})
	}
}
