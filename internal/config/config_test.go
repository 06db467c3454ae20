package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "disk", cfg.Storage.Backend)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxUploadBytes)
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("STORAGE_MINIO_ENDPOINT", "minio.internal:9000")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "minio", cfg.Storage.Backend)
	assert.Equal(t, "minio.internal:9000", cfg.Storage.Minio.Endpoint)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
