// Package config provides configuration loading and validation for the
// campus-connect service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither the environment nor a config file sets a
// value.
const (
	DefaultPort          = 8080
	DefaultTopN          = 10
	DefaultContentWeight = 0.7
	DefaultSchemaPath    = "schemas/job_catalog.schema.json"
)

// Config represents the service configuration. All fields are optional;
// missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Serving
	Port int `json:"port,omitempty"` // HTTP listen port

	// Catalog sources
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SeedFile    string `json:"seed_file,omitempty"`    // Path to JSON seed catalog
	SchemaFile  string `json:"schema_file,omitempty"`  // Path to seed catalog JSON Schema

	// Recommendation behavior
	TopN          int     `json:"top_n,omitempty"`          // Default recommendation list length
	ContentWeight float64 `json:"content_weight,omitempty"` // Content share of the hybrid blend (0.0-1.0)
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

// FromEnv builds a Config from environment variables. Unset variables leave
// the zero value so defaults apply at merge time.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SeedFile:    os.Getenv("SEED_FILE"),
		SchemaFile:  os.Getenv("SCHEMA_FILE"),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}
	if raw := os.Getenv("RECOMMEND_TOP_N"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			cfg.TopN = n
		}
	}
	if raw := os.Getenv("RECOMMEND_CONTENT_WEIGHT"); raw != "" {
		if w, err := strconv.ParseFloat(raw, 64); err == nil {
			cfg.ContentWeight = w
		}
	}

	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.ContentWeight < 0 || c.ContentWeight > 1 {
		return fmt.Errorf("config error: 'content_weight' must be in [0.0, 1.0]")
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: seed file not found: %s", c.SeedFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Used to layer environment values over a config file, and both
// over the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SeedFile == "" {
		result.SeedFile = defaults.SeedFile
	}
	if result.SchemaFile == "" {
		result.SchemaFile = defaults.SchemaFile
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.ContentWeight == 0 {
		result.ContentWeight = defaults.ContentWeight
	}

	return result
}

// Resolved applies the built-in defaults to any field still unset.
func (c *Config) Resolved() Config {
	return c.MergeWithDefaults(Config{
		Port:          DefaultPort,
		TopN:          DefaultTopN,
		ContentWeight: DefaultContentWeight,
		SchemaFile:    DefaultSchemaPath,
	})
}
