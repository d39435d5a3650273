package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins)
	assert.Len(t, cfg.Warnings(), 3)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://jobleet@localhost/jobleet")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("JWT_EXPIRY", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://jobs.example.com/ , https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"https://jobs.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.Warnings())
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "forever")

	_, err := LoadConfig()
	assert.Error(t, err)
}
