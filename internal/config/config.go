// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults used when neither the config file, the environment nor a flag sets a value
const (
	DefaultPort        = 8080
	DefaultRecentCount = 3
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	DataPath    string `json:"data_path,omitempty"`    // CV dataset override; empty uses the bundled dataset
	Template    string `json:"template,omitempty"`     // LaTeX template override for render
	Port        int    `json:"port,omitempty"`         // HTTP port for serve
	RecentCount int    `json:"recent_count,omitempty"` // Default count for recent experience
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from CVKIT_* environment variables
func FromEnv() Config {
	return Config{
		DataPath:    os.Getenv("CVKIT_DATA"),
		Template:    os.Getenv("CVKIT_TEMPLATE"),
		Port:        getEnvInt("CVKIT_PORT", 0),
		RecentCount: getEnvInt("CVKIT_RECENT_COUNT", 0),
		Verbose:     getEnvBool("CVKIT_VERBOSE", false),
	}
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Port:        DefaultPort,
		RecentCount: DefaultRecentCount,
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RecentCount < 0 {
		return fmt.Errorf("config error: 'recent_count' must be non-negative")
	}

	if c.DataPath != "" {
		if _, err := os.Stat(c.DataPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: data file not found: %s", c.DataPath)
		}
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataPath == "" {
		result.DataPath = defaults.DataPath
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RecentCount == 0 {
		result.RecentCount = defaults.RecentCount
	}

	// Bools cannot distinguish unset from false, so true wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Resolve layers the config file at path (optional) over the environment over built-in defaults
func Resolve(path string) (Config, error) {
	env := FromEnv()
	merged := env.MergeWithDefaults(Default())

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		merged = file.MergeWithDefaults(merged)
	}

	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
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
