// Package config provides configuration management for Bugboard.
// It loads settings from environment variables with the BUGBOARD_ prefix
// and provides sensible defaults for all configuration options. An optional
// YAML config file can supply values too; environment variables take
// precedence over the file, and the file over the defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration settings for the Bugboard application.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"` // Server port (default: 8980)
	Host string `yaml:"host"` // Server host (default: 127.0.0.1)
}

// LimitsConfig contains submission and pagination limits.
type LimitsConfig struct {
	MaxImageBytes int64 `yaml:"max_image_bytes"` // Max photo upload size (default: 10 MiB)
	MaxPageSize   int   `yaml:"max_page_size"`   // Max feed page size (default: 100)
}

// CORSConfig contains allowed browser origins for the API and WebSocket.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadConfig loads configuration from environment variables with defaults.
// All environment variables use the BUGBOARD_ prefix.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()
	applyEnv(cfg)
	return cfg, nil
}

// LoadConfigFromFile loads configuration from a YAML file layered over the
// defaults, then applies environment variable overrides on top.
func LoadConfigFromFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// defaultConfig constructs a Config with the built-in defaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8980,
			Host: "127.0.0.1",
		},
		Limits: LimitsConfig{
			MaxImageBytes: 10 << 20,
			MaxPageSize:   100,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:8980",
				"http://127.0.0.1:8980",
			},
		},
	}
}

// applyEnv overrides cfg fields from BUGBOARD_-prefixed environment variables.
func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvInt("BUGBOARD_PORT", cfg.Server.Port)
	cfg.Server.Host = getEnv("BUGBOARD_HOST", cfg.Server.Host)
	cfg.Limits.MaxImageBytes = getEnvInt64("BUGBOARD_MAX_IMAGE_BYTES", cfg.Limits.MaxImageBytes)
	cfg.Limits.MaxPageSize = getEnvInt("BUGBOARD_MAX_PAGE_SIZE", cfg.Limits.MaxPageSize)
	cfg.CORS.AllowedOrigins = getEnvList("BUGBOARD_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as an integer,
// it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 retrieves a 64-bit integer environment variable or returns a
// default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvList retrieves a comma-separated environment variable as a slice,
// or returns a default value. Empty entries are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
