package runtime

import (
	"errors"
	"strings"
	"testing"

	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/secrets"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	entries := map[registry.ProviderID]*registry.Entry{
		"plain": {
			Category:        registry.CategoryFree,
			SecretRef:       "PLAIN_API_KEY",
			BaseURLTemplate: "https://api.plain.example/v1",
			DefaultModel:    "plain-1",
			FreeModels:      []string{"plain-1", "plain-2"},
			Capabilities:    []registry.Capability{registry.CapabilityText},
			SDKStyle:        registry.SDKStyleOpenAICompatible,
		},
		"templated": {
			Category:        registry.CategoryFree,
			SecretRef:       "TEMPLATED_API_KEY",
			BaseURLTemplate: "https://api.example/{ACCOUNT_ID}/ai/{REGION}/v1",
			DefaultModel:    "t-1",
			FreeModels:      []string{"t-1"},
			Capabilities:    []registry.Capability{registry.CapabilityText},
			SDKStyle:        registry.SDKStyleOpenAICompatible,
		},
	}
	reg, err := registry.New([]registry.ProviderID{"plain", "templated"}, entries)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func TestResolvePlainURL(t *testing.T) {
	reg := testRegistry(t)
	source := secrets.NewStaticSource(map[string]string{"PLAIN_API_KEY": "sk-plain"})

	resolved, err := Resolve(reg, source, "plain")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.APIKey != "sk-plain" {
		t.Errorf("APIKey = %q, want %q", resolved.APIKey, "sk-plain")
	}
	if resolved.BaseURL != "https://api.plain.example/v1" {
		t.Errorf("BaseURL = %q", resolved.BaseURL)
	}
}

func TestResolveSubstitutesAllPlaceholders(t *testing.T) {
	reg := testRegistry(t)
	source := secrets.NewStaticSource(map[string]string{
		"TEMPLATED_API_KEY": "sk-templated",
		"ACCOUNT_ID":        "acct-42",
		"REGION":            "eu-west",
	})

	resolved, err := Resolve(reg, source, "templated")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.BaseURL != "https://api.example/acct-42/ai/eu-west/v1" {
		t.Errorf("BaseURL = %q", resolved.BaseURL)
	}
	if strings.ContainsAny(resolved.BaseURL, "{}") {
		t.Errorf("BaseURL still contains placeholder tokens: %q", resolved.BaseURL)
	}
}

func TestResolveMissingPlaceholderBecomesEmpty(t *testing.T) {
	reg := testRegistry(t)
	source := secrets.NewStaticSource(map[string]string{"ACCOUNT_ID": "acct-42"})

	resolved, err := Resolve(reg, source, "templated")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.BaseURL != "https://api.example/acct-42/ai//v1" {
		t.Errorf("BaseURL = %q, want missing placeholder replaced by empty string", resolved.BaseURL)
	}
	if resolved.APIKey != "" {
		t.Errorf("APIKey = %q, want empty for absent secret", resolved.APIKey)
	}
}

func TestResolveUnknownProvider(t *testing.T) {
	reg := testRegistry(t)
	source := secrets.NewStaticSource(nil)

	_, err := Resolve(reg, source, "ghost")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if cfgErr.Provider != "ghost" {
		t.Errorf("Provider = %q, want %q", cfgErr.Provider, "ghost")
	}
}

func TestResolveIsPure(t *testing.T) {
	reg := testRegistry(t)
	source := secrets.NewStaticSource(map[string]string{"PLAIN_API_KEY": "sk-plain"})

	first, err := Resolve(reg, source, "plain")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := Resolve(reg, source, "plain")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if first == second {
		t.Error("Resolve returned a shared instance; expected fresh values per call")
	}
	if *first != *second {
		t.Errorf("Resolve not deterministic: %+v != %+v", first, second)
	}
}
