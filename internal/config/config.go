package config

import (
	"fmt"
	"os"
)

// Config holds library settings, populated from environment variables.
type Config struct {
	// DatasetPath points at an external dataset file. Empty means the
	// embedded default dataset is used.
	DatasetPath string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables, applying
// defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		DatasetPath: os.Getenv("FEAST_DATASET_PATH"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
