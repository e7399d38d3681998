// Package registry holds the static catalog of LLM inference providers.
//
// The catalog is compiled-in data: it contains no secrets, is loaded once at
// process start, and is treated as immutable for the lifetime of the process.
// Secrets are referenced by name (SecretRef) and resolved at runtime by the
// config resolver.
package registry

import "fmt"

// ProviderID identifies a provider in the catalog.
// IDs are stable across restarts and act as the key for every derived table
// (resolved configs, cached clients, metrics labels).
type ProviderID string

// Category classifies a provider's pricing tier.
// It is informational only and drives default selection preference.
type Category string

const (
	CategoryPaid      Category = "paid"
	CategoryFree      Category = "free"
	CategoryTrial     Category = "trial"
	CategoryCommunity Category = "community"
	CategoryInfra     Category = "infra"
)

// Capability is a coarse task category a provider supports.
type Capability string

const (
	CapabilityText       Capability = "text"
	CapabilityCode       Capability = "code"
	CapabilityVision     Capability = "vision"
	CapabilityAudio      Capability = "audio"
	CapabilityMultimodal Capability = "multimodal"
	CapabilityEmbeddings Capability = "embeddings"
	CapabilityInfra      Capability = "infra"
)

// SDKStyle selects which adapter integration style a provider uses.
// Most providers speak the OpenAI-compatible wire format; a few ship their
// own SDK surface with a different model accessor.
type SDKStyle string

const (
	// SDKStyleOpenAICompatible providers are served by the generic
	// OpenAI-compatible adapter (ChatModel accessor).
	SDKStyleOpenAICompatible SDKStyle = "openai-compatible"

	// SDKStyleNative providers ship their own adapter surface
	// (Chat accessor).
	SDKStyleNative SDKStyle = "native"
)

// RateLimits carries advisory upstream rate limits.
// They are never enforced locally; they exist so UIs can surface them.
type RateLimits struct {
	// RequestsPerMinute is the approximate request quota (0 = unknown).
	RequestsPerMinute int

	// TokensPerMinute is the approximate token quota (0 = unknown).
	TokensPerMinute int
}

// Entry is the static metadata for a single provider.
//
// Invariant: DefaultModel, when non-empty, appears in FreeModels or
// PaidModels. Violations are catalog authoring defects caught by
// Registry.Lint and the registry tests, not runtime errors.
type Entry struct {
	// Category is the pricing tier (paid, free, trial, community, infra).
	Category Category

	// SecretRef names the secret holding this provider's API key.
	// The secret value itself never appears in the catalog.
	SecretRef string

	// BaseURLTemplate is the API endpoint. It may contain {PLACEHOLDER}
	// tokens substituted from the secret source at resolution time.
	BaseURLTemplate string

	// DefaultModel is the model used when the caller does not pick one.
	// Empty for infra providers with no enumerable models.
	DefaultModel string

	// FreeModels lists models usable on the free tier, in display order.
	FreeModels []string

	// PaidModels lists paid-tier models, in display order.
	// A model never appears in both lists.
	PaidModels []string

	// Capabilities is the set of task categories this provider supports.
	Capabilities []Capability

	// SupportsStreaming reports whether incremental token delivery is
	// available. When false the gateway still serves requests, but the
	// whole completion is delivered as a single event.
	SupportsStreaming bool

	// SDKStyle selects the adapter integration style.
	SDKStyle SDKStyle

	// RateLimits carries advisory upstream quotas, if known.
	RateLimits *RateLimits

	// Notes is an optional operator-facing remark.
	Notes string
}

// HasCapability reports whether the entry declares the given capability.
func (e *Entry) HasCapability(c Capability) bool {
	for _, have := range e.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Models returns the set of model identifiers a caller may request:
// the default model plus every free model. Paid models are deliberately
// excluded from the request surface (they are listed for display only).
func (e *Entry) Models() []string {
	models := make([]string, 0, len(e.FreeModels)+1)
	if e.DefaultModel != "" {
		models = append(models, e.DefaultModel)
	}
	for _, m := range e.FreeModels {
		if m != e.DefaultModel {
			models = append(models, m)
		}
	}
	return models
}

// FirstFreeModel returns the first free model in display order.
// The second return value is false when the provider has no free models.
func (e *Entry) FirstFreeModel() (string, bool) {
	if len(e.FreeModels) == 0 {
		return "", false
	}
	return e.FreeModels[0], true
}

// Registry is a read-only, ordered catalog of provider entries.
//
// Iteration order is part of the contract: the selector's tie-breaking and
// the /providers listing both depend on it being deterministic.
type Registry struct {
	order   []ProviderID
	entries map[ProviderID]*Entry
}

// New builds a registry from an explicit order and entry table.
// Both are copied; later mutation of the arguments does not affect the
// registry.
func New(order []ProviderID, entries map[ProviderID]*Entry) (*Registry, error) {
	if len(order) != len(entries) {
		return nil, fmt.Errorf("registry order lists %d providers but entry table has %d", len(order), len(entries))
	}

	r := &Registry{
		order:   make([]ProviderID, len(order)),
		entries: make(map[ProviderID]*Entry, len(entries)),
	}
	copy(r.order, order)

	for _, id := range order {
		entry, ok := entries[id]
		if !ok {
			return nil, fmt.Errorf("registry order references unknown provider %q", id)
		}
		if entry == nil {
			return nil, fmt.Errorf("registry entry for provider %q is nil", id)
		}
		r.entries[id] = entry
	}

	return r, nil
}

// NewDefault returns the compiled-in provider catalog.
func NewDefault() *Registry {
	r, err := New(catalogOrder, catalog)
	if err != nil {
		// The compiled-in catalog is validated by tests; reaching this
		// means the binary shipped with a broken catalog.
		panic(fmt.Sprintf("default registry is invalid: %v", err))
	}
	return r
}

// Get returns the entry for the given provider ID.
// The second return value is false when the provider is unknown.
func (r *Registry) Get(id ProviderID) (*Entry, bool) {
	entry, ok := r.entries[id]
	return entry, ok
}

// Has reports whether the provider ID exists in the catalog.
func (r *Registry) Has(id ProviderID) bool {
	_, ok := r.entries[id]
	return ok
}

// All returns every provider ID in catalog order.
// The returned slice is a copy.
func (r *Registry) All() []ProviderID {
	out := make([]ProviderID, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of providers in the catalog.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lint checks catalog authoring invariants:
//
//   - DefaultModel, when set, appears in FreeModels or PaidModels.
//   - No model appears in both FreeModels and PaidModels.
//   - Every entry names a SecretRef and a BaseURLTemplate.
//
// It returns one error per violation.
func (r *Registry) Lint() []error {
	var errs []error

	for _, id := range r.order {
		entry := r.entries[id]

		if entry.SecretRef == "" {
			errs = append(errs, fmt.Errorf("provider %q: missing secret ref", id))
		}
		if entry.BaseURLTemplate == "" {
			errs = append(errs, fmt.Errorf("provider %q: missing base URL template", id))
		}

		if entry.DefaultModel != "" && !contains(entry.FreeModels, entry.DefaultModel) && !contains(entry.PaidModels, entry.DefaultModel) {
			errs = append(errs, fmt.Errorf("provider %q: default model %q is in neither free nor paid list", id, entry.DefaultModel))
		}

		free := make(map[string]bool, len(entry.FreeModels))
		for _, m := range entry.FreeModels {
			free[m] = true
		}
		for _, m := range entry.PaidModels {
			if free[m] {
				errs = append(errs, fmt.Errorf("provider %q: model %q appears in both free and paid lists", id, m))
			}
		}
	}

	return errs
}

func contains(list []string, want string) bool {
	for _, have := range list {
		if have == want {
			return true
		}
	}
	return false
}
