package config

import (
	"os"
	"strconv"
	"time"

	"edna/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Remote   RemoteConfig
	Local    LocalConfig
	Rescore  RescoreConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// RemoteConfig holds the optional remote results endpoint settings.
// Empty URL disables the sink entirely.
type RemoteConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// LocalConfig holds the offline sqlite store settings
type LocalConfig struct {
	Path    string
	Enabled bool
}

// RescoreConfig holds batch rescore settings
type RescoreConfig struct {
	Concurrency int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Remote: RemoteConfig{
			URL:     os.Getenv("RESULTS_ENDPOINT"),
			Token:   os.Getenv("RESULTS_TOKEN"),
			Timeout: getEnvDurationOrDefault("RESULTS_TIMEOUT", 5*time.Second),
		},
		Local: LocalConfig{
			Path:    getEnvOrDefault("LOCAL_STORE_PATH", "edna.db"),
			Enabled: getEnvBoolOrDefault("LOCAL_STORE", false),
		},
		Rescore: RescoreConfig{
			Concurrency: int64(getEnvIntOrDefault("RESCORE_CONCURRENCY", 4)),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Database.URL == "" && !cfg.Local.Enabled {
		return errors.ConfigInvalid("DATABASE_URL is required unless LOCAL_STORE=true")
	}
	if cfg.Remote.URL != "" && cfg.Remote.Token == "" {
		return errors.ConfigInvalid("RESULTS_TOKEN is required when RESULTS_ENDPOINT is set")
	}
	if cfg.Rescore.Concurrency < 1 {
		return errors.ConfigInvalid("RESCORE_CONCURRENCY must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
