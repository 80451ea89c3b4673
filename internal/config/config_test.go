package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost:5432/kidfun?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "internal/infrastructure/database/migrations", cfg.MigrationsPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://db.internal:5432/kidfun")
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")
	t.Setenv("DEFAULT_LOCALE", "es")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "postgres://db.internal:5432/kidfun", cfg.DatabaseURL)
	assert.Equal(t, "/srv/migrations", cfg.MigrationsPath)
	assert.Equal(t, "es", cfg.DefaultLocale)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "not-a-url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
