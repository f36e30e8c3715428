// Package config holds process-wide configuration: where the service
// account key lives and which property queries default to. It is built
// once at startup and passed into the front ends explicitly; nothing in
// this repository reads the environment after that.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables consumed at startup.
const (
	EnvCredentialsPath = "GA4_CREDENTIALS_PATH"
	EnvPropertyID      = "GA4_PROPERTY_ID"
)

var (
	// ErrMissingProperty indicates no property id from flag, config
	// file, or environment.
	ErrMissingProperty = errors.New("no property id: use --property-id or set " + EnvPropertyID)

	// ErrMissingCredentials indicates the credentials path is unset or
	// the file is unreadable. Only detection happens here; the key file
	// itself is consumed by the Google client libraries.
	ErrMissingCredentials = errors.New("no credentials: set " + EnvCredentialsPath + " to a service account key file")
)

// Config holds all configuration options for ga4ctl.
type Config struct {
	// CredentialsPath points at the service account JSON key.
	CredentialsPath string `koanf:"credentials_path"`

	// PropertyID is the default GA4 property when no flag override is
	// given.
	PropertyID string `koanf:"property_id"`

	// Defaults for per-query knobs.
	Defaults DefaultsConfig `koanf:"defaults"`
}

// DefaultsConfig carries per-query defaults. Row limits are left to the
// report catalog, which knows the right default per report.
type DefaultsConfig struct {
	Days   int    `koanf:"days"`
	Output string `koanf:"output"` // table, json, csv
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Days:   30,
			Output: "table",
		},
	}
}

// Load loads configuration from a file and overlays the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to
// defaults. The environment always wins over file values.
func LoadOrDefault() *Config {
	names := []string{
		"ga4ctl.toml",
		"ga4ctl.yaml",
		"ga4ctl.yml",
		"ga4ctl.json",
		".ga4ctl.toml",
		".ga4ctl.yaml",
		".ga4ctl.yml",
		".ga4ctl.json",
	}

	searchDirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		searchDirs = append(searchDirs, filepath.Join(home, ".config", "ga4ctl"))
	}

	for _, dir := range searchDirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				if cfg, err := Load(path); err == nil {
					return cfg
				}
			}
		}
	}

	cfg := DefaultConfig()
	cfg.applyEnv()
	return cfg
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCredentialsPath); v != "" {
		c.CredentialsPath = v
	}
	if v := os.Getenv(EnvPropertyID); v != "" {
		c.PropertyID = v
	}
}

// ResolveProperty picks the property id for one query: an explicit
// override wins, then the configured default.
func (c *Config) ResolveProperty(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.PropertyID != "" {
		return c.PropertyID, nil
	}
	return "", ErrMissingProperty
}

// CheckCredentials verifies a credentials path is configured and
// readable. It does not parse the key; that belongs to the vendor
// client.
func (c *Config) CheckCredentials() error {
	if c.CredentialsPath == "" {
		return ErrMissingCredentials
	}
	if _, err := os.Stat(c.CredentialsPath); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}
	return nil
}
