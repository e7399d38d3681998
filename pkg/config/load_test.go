package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Gateway.DefaultProvider != DefaultProvider {
		t.Errorf("DefaultProvider = %q", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.Client.Timeout != 120*time.Second {
		t.Errorf("Client.Timeout = %v", cfg.Gateway.Client.Timeout)
	}
	if cfg.Server.WriteTimeout != 0 {
		t.Errorf("WriteTimeout = %v, want 0 for SSE", cfg.Server.WriteTimeout)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_address: ":9090"
gateway:
  default_provider: groq
  client:
    timeout: 30s
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.ListenAddress != ":9090" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Gateway.DefaultProvider != "groq" {
		t.Errorf("DefaultProvider = %q", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %v", cfg.Gateway.Client.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults.
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics.Path = %q", cfg.Metrics.Path)
	}
	if cfg.Gateway.Client.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d", cfg.Gateway.Client.MaxRetries)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PRISM_LISTEN_ADDRESS", ":7070")
	t.Setenv("PRISM_DEFAULT_PROVIDER", "cerebras")
	t.Setenv("PRISM_CLIENT_TIMEOUT", "45s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.ListenAddress != ":7070" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Gateway.DefaultProvider != "cerebras" {
		t.Errorf("DefaultProvider = %q", cfg.Gateway.DefaultProvider)
	}
	if cfg.Gateway.Client.Timeout != 45*time.Second {
		t.Errorf("Client.Timeout = %v", cfg.Gateway.Client.Timeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logging:\n  level: verbose\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"tracing without endpoint", "tracing:\n  enabled: true\n"},
		{"bad sample ratio", "tracing:\n  sample_ratio: 2.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "server: [broken")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
