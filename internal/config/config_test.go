package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "APP_ENV", "LOG_LEVEL", "DATABASE_URL", "REDIS_URL",
	"FIREBASE_CREDENTIALS_PATH", "FIREBASE_API_KEY", "FIREBASE_AUTH_DOMAIN",
	"FIREBASE_PROJECT_ID", "ADMIN_EMAILS", "ANALYTICS_SALT",
	"CACHE_TTL", "WORKER_INTERVAL", "ANALYTICS_RETENTION_DAYS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		// Setenv registers the restore; unset so godotenv may fill the key
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 365, cfg.AnalyticsRetentionDays)
	assert.Equal(t, 5*time.Minute, cfg.WorkerInterval)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.IsProduction())
	assert.NotEmpty(t, cfg.AnalyticsSalt)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("ADMIN_EMAILS", "a@example.com, b@example.com,")
	t.Setenv("ANALYTICS_RETENTION_DAYS", "30")
	t.Setenv("FIREBASE_PROJECT_ID", "portfolio-admin")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.AdminEmails)
	assert.Equal(t, 30, cfg.AnalyticsRetentionDays)
	assert.Equal(t, "portfolio-admin", cfg.FirebaseWeb.ProjectID)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nWORKER_INTERVAL=1m\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.WorkerInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad duration", "CACHE_TTL", "soon", "CACHE_TTL"},
		{"bad int", "ANALYTICS_RETENTION_DAYS", "year", "ANALYTICS_RETENTION_DAYS"},
		{"bad port", "PORT", "http", "PORT"},
		{"port out of range", "PORT", "70000", "PORT"},
		{"negative interval", "WORKER_INTERVAL", "-1m", "WORKER_INTERVAL"},
		{"unknown log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadRequiresAdminEmailsWithFirebase(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/portfolio/firebase.json")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_EMAILS")

	t.Setenv("ADMIN_EMAILS", " , ")
	_, err = Load(missingEnvFile(t))
	require.Error(t, err)

	t.Setenv("ADMIN_EMAILS", "owner@example.com")
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, cfg.AdminEmails)
}
