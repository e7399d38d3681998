package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads, defaults, overrides and validates a config file. An empty
// path yields the defaults, so the gateway runs without any file at all.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.ApplyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployment environments override file settings
// without editing the file. Only operational knobs are exposed this way.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PRISM_LISTEN_ADDRESS"); v != "" {
		c.Server.ListenAddress = v
	}
	if v := os.Getenv("PRISM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PRISM_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("PRISM_DEFAULT_PROVIDER"); v != "" {
		c.Gateway.DefaultProvider = v
	}
	if v := os.Getenv("PRISM_SECRET_PREFIX"); v != "" {
		c.Gateway.SecretPrefix = v
	}
	if v := os.Getenv("PRISM_CLIENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Gateway.Client.Timeout = d
		}
	}
	if v := os.Getenv("PRISM_TRACING_ENDPOINT"); v != "" {
		c.Tracing.Enabled = true
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv("PRISM_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Metrics.Enabled = b
		}
	}
}
