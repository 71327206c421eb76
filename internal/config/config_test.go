package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "portfolio", cfg.MongoDB.Database)
	assert.Equal(t, 720*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "local", cfg.Uploads.Backend)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestLoadUsesDevSecretWhenUnset(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.JWT.SecretDefault)
	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "folio_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "1")
	t.Setenv("UPLOAD_BACKEND", "minio")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, "folio_test", cfg.MongoDB.Database)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.False(t, cfg.JWT.SecretDefault)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "minio", cfg.Uploads.Backend)
	assert.True(t, cfg.RateLimit.Enabled)
}
