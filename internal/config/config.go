// Package config provides YAML settings file loading and validation.
// The settings file is optional: when it is absent the tool runs against
// the public Flashbots endpoint with no request timeout, matching the
// behavior of a bare invocation.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = "config/profit.yaml"

// DefaultEndpoint is the public mev-blocks API.
const DefaultEndpoint = "https://blocks.flashbots.net"

// Config holds the tool's settings.
type Config struct {
	Endpoint string        `yaml:"endpoint"`          // API base URL (supports ${VAR} env expansion)
	Timeout  time.Duration `yaml:"timeout,omitempty"` // HTTP request timeout (0 = no deadline)
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint url scheme %q (expected http or https)", u.Scheme)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0")
	}
	return nil
}

// Load reads and parses a YAML settings file, expanding environment
// variables in its content. An empty path means "the default path, if it
// exists": a missing file at the default path is not an error, the
// built-in defaults are returned instead. An explicitly given path must
// exist.
func Load(path string) (*Config, error) {
	cfg := &Config{Endpoint: DefaultEndpoint}

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
