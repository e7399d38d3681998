// Package config defines the gateway's YAML configuration, its defaults
// and validation.
package config

import "time"

// Config is the root configuration document.
type Config struct {
	// Server holds the HTTP listener settings.
	Server ServerConfig `yaml:"server"`

	// Gateway holds provider dispatch settings.
	Gateway GatewayConfig `yaml:"gateway"`

	// Logging controls the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls the Prometheus endpoint.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing controls OpenTelemetry span export.
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// ListenAddress is the host:port to bind.
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout bounds reading the request head and body.
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing the response. Zero disables it, which
	// long-lived SSE streams require.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout bounds keep-alive connections between requests.
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes caps the request header size.
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// CORS controls cross-origin access.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig controls cross-origin access.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"`
}

// GatewayConfig holds provider dispatch settings.
type GatewayConfig struct {
	// DefaultProvider serves requests that omit a provider.
	DefaultProvider string `yaml:"default_provider"`

	// SecretPrefix is prepended to every secret reference before the
	// environment lookup.
	SecretPrefix string `yaml:"secret_prefix"`

	// Client holds the per-provider HTTP client settings.
	Client ClientConfig `yaml:"client"`
}

// ClientConfig holds the upstream HTTP client settings.
type ClientConfig struct {
	// Timeout bounds each upstream request end to end.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries is the retry budget for transient upstream failures.
	MaxRetries int `yaml:"max_retries"`

	// MaxIdleConns caps the connection pool across all hosts.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// MaxIdleConnsPerHost caps idle connections per upstream host.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host"`

	// IdleConnTimeout is how long idle connections stay pooled.
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`

	// Format is "json" or "text".
	Format string `yaml:"format"`

	// AddSource includes file:line in every record.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
	ServiceName string  `yaml:"service_name"`
}
