package config

import "time"

// Defaults applied to unset fields.
const (
	DefaultListenAddress   = ":8080"
	DefaultProvider        = "openrouter"
	DefaultMetricsPath     = "/metrics"
	DefaultMetricNamespace = "prism"
	DefaultMetricSubsystem = "gateway"
	DefaultServiceName     = "prism-gateway"
)

// Default returns a fully populated config.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset field with its default. Called after
// unmarshaling and before validation, so a partial file yields a complete
// config.
func (c *Config) ApplyDefaults() {
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = DefaultListenAddress
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	// WriteTimeout stays zero: SSE responses outlive any sane value.
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15 * time.Second
	}
	if c.Server.MaxHeaderBytes == 0 {
		c.Server.MaxHeaderBytes = 1 << 20
	}

	if len(c.Server.CORS.AllowedOrigins) == 0 {
		c.Server.CORS.AllowedOrigins = []string{"*"}
	}
	if len(c.Server.CORS.AllowedMethods) == 0 {
		c.Server.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(c.Server.CORS.AllowedHeaders) == 0 {
		c.Server.CORS.AllowedHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if c.Server.CORS.MaxAge == 0 {
		c.Server.CORS.MaxAge = 3600
	}

	if c.Gateway.DefaultProvider == "" {
		c.Gateway.DefaultProvider = DefaultProvider
	}
	if c.Gateway.Client.Timeout == 0 {
		c.Gateway.Client.Timeout = 120 * time.Second
	}
	if c.Gateway.Client.MaxRetries == 0 {
		c.Gateway.Client.MaxRetries = 2
	}
	if c.Gateway.Client.MaxIdleConns == 0 {
		c.Gateway.Client.MaxIdleConns = 100
	}
	if c.Gateway.Client.MaxIdleConnsPerHost == 0 {
		c.Gateway.Client.MaxIdleConnsPerHost = 10
	}
	if c.Gateway.Client.IdleConnTimeout == 0 {
		c.Gateway.Client.IdleConnTimeout = 90 * time.Second
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricNamespace
	}
	if c.Metrics.Subsystem == "" {
		c.Metrics.Subsystem = DefaultMetricSubsystem
	}

	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = DefaultServiceName
	}
}
