package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // Requests allowed per Window
	Window          time.Duration // Refill window for Limit
	Burst           int           // Burst capacity (defaults to Limit if 0)
	CleanupInterval time.Duration // How often idle clients are evicted
	IdleTTL         time.Duration // How long a client may be idle before eviction
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	ExemptPaths     map[string]bool // Paths never limited, e.g. /health
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           600,
		Window:          time.Minute,
		Burst:           60,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		ExemptPaths:     map[string]bool{"/health": true},
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	cfg.Limit = getEnvInt("RATE_LIMIT_LIMIT", cfg.Limit)
	cfg.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.Burst)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.IdleTTL = getEnvDuration("RATE_LIMIT_IDLE_TTL", cfg.IdleTTL)
	cfg.Whitelist = parseList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	cfg.Blacklist = parseList(getEnvString("RATE_LIMIT_BLACKLIST", ""))

	// An explicit list replaces the default exemptions
	if paths := getEnvString("RATE_LIMIT_EXEMPT_PATHS", ""); paths != "" {
		cfg.ExemptPaths = parseList(paths)
	}

	return cfg
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseList parses a comma-separated list into a set.
func parseList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result[item] = true
		}
	}
	return result
}
