package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/document-analyzer-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "LOG_LEVEL", "OUTPUT_DIR", "TEMP_DIR", "MAX_FILE_SIZE_MB", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data/output", cfg.OutputDir)
	assert.Equal(t, "data/temp", cfg.TempDir)
	assert.Equal(t, int64(100), cfg.MaxFileSizeMB)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FILE_SIZE_MB", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(25), cfg.MaxFileSizeMB)
}

func TestLoad_InvalidSizeFallsBackToDefault(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_MB", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(100), cfg.MaxFileSizeMB)
}

func TestLoad_ZeroSizeRejected(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_MB", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_FILE_SIZE_MB")
}

func TestLoad_SharedRootsRejected(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "data/shared")
	t.Setenv("TEMP_DIR", "data/shared")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestLoad_CORSOriginList(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestMaxFileSizeBytes(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE_MB", "2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxFileSizeBytes())
}
