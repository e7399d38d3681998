package config

import (
	"errors"
	"fmt"
)

// Validate checks internal consistency. Whether the default provider is
// actually in the catalog is checked at server start, when the registry
// is available.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.ListenAddress == "" {
		errs = append(errs, errors.New("server.listen_address must not be empty"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	if c.Gateway.DefaultProvider == "" {
		errs = append(errs, errors.New("gateway.default_provider must not be empty"))
	}
	if c.Gateway.Client.Timeout <= 0 {
		errs = append(errs, errors.New("gateway.client.timeout must be positive"))
	}
	if c.Gateway.Client.MaxRetries < 0 {
		errs = append(errs, errors.New("gateway.client.max_retries must not be negative"))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not valid", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not valid", c.Logging.Format))
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("tracing.sample_ratio must be in [0, 1]"))
	}

	return errors.Join(errs...)
}
