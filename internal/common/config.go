package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Export   ExportConfig
	Watch    WatchConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path        string
	DialTimeout time.Duration
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	OutputDir string
}

// WatchConfig holds directory-watch configuration
type WatchConfig struct {
	Roots       []string
	InitialScan bool
	Debounce    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("SEGMENTER_DB", "segmenter.db"),
			DialTimeout: getEnvAsDuration("SEGMENTER_DB_TIMEOUT", 3*time.Second),
		},
		Export: ExportConfig{
			OutputDir: getEnv("SEGMENTER_OUTPUT_DIR", "."),
		},
		Watch: WatchConfig{
			Roots:       splitNonEmpty(getEnv("SEGMENTER_WATCH_DIRS", "")),
			InitialScan: getEnvAsBool("SEGMENTER_WATCH_INITIAL_SCAN", true),
			Debounce:    getEnvAsDuration("SEGMENTER_WATCH_DEBOUNCE", 2*time.Second),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "SEGMENTER_DB is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
