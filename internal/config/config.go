// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Analysis
	VocabularyPath string `json:"vocabulary_path,omitempty"` // Optional vocabulary override file
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for suggestion polish

	// Job search upstream
	JobSearchBaseURL string `json:"job_search_base_url,omitempty"`
	JobSearchAppID   string `json:"job_search_app_id,omitempty"`
	JobSearchAppKey  string `json:"job_search_app_key,omitempty"`
	JobSearchCountry string `json:"job_search_country,omitempty"` // e.g. "us"
	CacheTTLMinutes  int    `json:"cache_ttl_minutes,omitempty"`  // search result cache TTL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.JobSearchBaseURL == "" {
		result.JobSearchBaseURL = defaults.JobSearchBaseURL
	}
	if result.JobSearchAppID == "" {
		result.JobSearchAppID = defaults.JobSearchAppID
	}
	if result.JobSearchAppKey == "" {
		result.JobSearchAppKey = defaults.JobSearchAppKey
	}
	if result.JobSearchCountry == "" {
		result.JobSearchCountry = defaults.JobSearchCountry
	}
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = defaults.CacheTTLMinutes
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// FromEnvironment overlays environment variables onto the config. Environment
// values win over file values so deployments can override without editing
// files.
func (c *Config) FromEnvironment() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("JOB_SEARCH_APP_ID"); v != "" {
		c.JobSearchAppID = v
	}
	if v := os.Getenv("JOB_SEARCH_APP_KEY"); v != "" {
		c.JobSearchAppKey = v
	}
	if v := os.Getenv("JOB_SEARCH_BASE_URL"); v != "" {
		c.JobSearchBaseURL = v
	}
}
