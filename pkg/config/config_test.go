package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("AQUA_DATABASE_URL", "")
	t.Setenv("AQUA_API_KEY", "secret")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("AQUA_DATABASE_URL", "postgres://localhost/aqua")
	t.Setenv("AQUA_API_KEY", "  ")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AQUA_DATABASE_URL", "postgres://localhost/aqua")
	t.Setenv("AQUA_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("AQUA_DATABASE_URL", "postgres://db.example.com/aqua")
	t.Setenv("AQUA_API_KEY", "secret")
	t.Setenv("AQUA_PORT", "8080")
	t.Setenv("AQUA_ENV", "production")
	t.Setenv("AQUA_LOG_LEVEL", "debug")
	t.Setenv("AQUA_AUTO_MIGRATE", "false")
	t.Setenv("AQUA_TOKEN_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://db.example.com/aqua", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}

func TestRead_SkipsValidation(t *testing.T) {
	t.Setenv("AQUA_DATABASE_URL", "")
	t.Setenv("AQUA_API_KEY", "secret")

	cfg := Read()
	assert.Equal(t, "secret", cfg.APIKey)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingDatabaseURL)
}
