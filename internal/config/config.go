// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Job string `json:"job,omitempty"` // Path to job requirements JSON file

	// Completion service
	Provider string `json:"provider,omitempty"` // "groq" or "gemini"
	Model    string `json:"model,omitempty"`    // Model name override
	APIKey   string `json:"api_key,omitempty"`  // API key for the provider

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Completion call timeout
	Degraded       bool `json:"degraded,omitempty"`        // Substitute fallback profile on upstream failure
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
}

// DefaultTimeoutSeconds bounds the completion call when no timeout is
// configured.
const DefaultTimeoutSeconds = 60

// Load loads configuration from a JSON file. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values. Required fields
// are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != "groq" && c.Provider != "gemini" {
		return fmt.Errorf("config error: unknown provider %q (expected groq or gemini)", c.Provider)
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	if result.TimeoutSeconds == 0 {
		if defaults.TimeoutSeconds > 0 {
			result.TimeoutSeconds = defaults.TimeoutSeconds
		} else {
			result.TimeoutSeconds = DefaultTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools).

	return result
}

// APIKeyFromEnv returns the API key for a provider from its conventional
// environment variable.
func APIKeyFromEnv(provider string) string {
	switch provider {
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	default:
		return os.Getenv("GROQ_API_KEY")
	}
}
