package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host     string
	Port     string
	LogLevel string

	// Storage roots; each job gets its own child directory under OutputDir
	// and its own name-prefixed file under TempDir.
	OutputDir string
	TempDir   string

	// Upload limits
	MaxFileSizeMB int64

	// CORS
	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		OutputDir:     getEnv("OUTPUT_DIR", "data/output"),
		TempDir:       getEnv("TEMP_DIR", "data/temp"),
		MaxFileSizeMB: getEnvInt64("MAX_FILE_SIZE_MB", 100),
		CORSOrigins:   splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE_MB must be positive, got %d", cfg.MaxFileSizeMB)
	}
	if cfg.OutputDir == cfg.TempDir {
		return nil, fmt.Errorf("OUTPUT_DIR and TEMP_DIR must differ, both are %q", cfg.OutputDir)
	}

	return cfg, nil
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB << 20
}

func splitOrigins(raw string) []string {
	if raw == "*" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
