// Package runtime turns static registry entries into live, cached network
// clients: config resolution, model validation, and the per-provider client
// and adapter caches.
package runtime

import (
	"regexp"

	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/secrets"
)

// placeholderPattern matches {NAME} tokens in base URL templates.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// ResolvedConfig is a registry entry made ready for use: the secret
// reference replaced by its value and the URL template fully substituted.
//
// Instances are immutable. Secrets rotate only across process restarts, so
// a resolved config never goes stale within one process.
type ResolvedConfig struct {
	// APIKey is the resolved credential; empty when the secret is absent.
	// Absence is not an error here — it becomes one only when a client
	// must be constructed.
	APIKey string

	// BaseURL is the endpoint with every {X} placeholder replaced by the
	// value of secret X, or by the empty string when X is absent.
	BaseURL string
}

// Resolve builds the runtime configuration for a provider.
//
// It is a pure function of (registry entry, secret source): no caching, no
// I/O beyond the source lookups, no side effects. It fails only when the
// provider is absent from the registry.
func Resolve(reg *registry.Registry, source secrets.Source, id registry.ProviderID) (*ResolvedConfig, error) {
	entry, ok := reg.Get(id)
	if !ok {
		return nil, &ConfigurationError{Provider: id, Message: "not present in registry"}
	}

	apiKey, _ := source.Lookup(entry.SecretRef)

	baseURL := placeholderPattern.ReplaceAllStringFunc(entry.BaseURLTemplate, func(token string) string {
		name := token[1 : len(token)-1]
		value, _ := source.Lookup(name)
		return value
	})

	return &ResolvedConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
	}, nil
}
