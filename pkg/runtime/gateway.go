package runtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lumen-ai/prism/pkg/providers"
	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/secrets"
)

// ClientOptions are the transport knobs applied to every constructed
// provider client.
type ClientOptions struct {
	// Timeout bounds each upstream request.
	Timeout time.Duration

	// MaxRetries is the retry budget for transient upstream failures.
	MaxRetries int

	// MaxIdleConns caps each provider's connection pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost caps idle connections per upstream host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long idle connections stay pooled.
	IdleConnTimeout time.Duration
}

// DefaultClientOptions returns the transport defaults.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:             120 * time.Second,
		MaxRetries:          2,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
}

// Gateway owns the per-provider client and adapter caches.
//
// It is the only mutable shared state in the process: each cache maps a
// provider ID to at most one live instance, written once on first use and
// never replaced or invalidated afterwards. Construct one Gateway per
// process; tests construct their own to get empty caches.
type Gateway struct {
	registry *registry.Registry
	source   secrets.Source
	opts     ClientOptions

	mu       sync.RWMutex
	clients  map[registry.ProviderID]*providers.Client
	adapters map[registry.ProviderID]interface{}
}

// NewGateway creates a gateway with empty caches.
func NewGateway(reg *registry.Registry, source secrets.Source, opts ClientOptions) *Gateway {
	return &Gateway{
		registry: reg,
		source:   source,
		opts:     opts,
		clients:  make(map[registry.ProviderID]*providers.Client),
		adapters: make(map[registry.ProviderID]interface{}),
	}
}

// Registry returns the gateway's provider catalog.
func (g *Gateway) Registry() *registry.Registry {
	return g.registry
}

// Client returns the cached client for a provider, constructing it on first
// use.
//
// Construction resolves the provider's runtime config and fails with
// MissingCredentialError when the API key is absent; a client cannot
// authenticate without one. Concurrent first use converges on a single
// published instance via double-checked locking.
func (g *Gateway) Client(id registry.ProviderID) (*providers.Client, error) {
	g.mu.RLock()
	client, ok := g.clients[id]
	g.mu.RUnlock()
	if ok {
		return client, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Another request may have won the construction race.
	if client, ok := g.clients[id]; ok {
		return client, nil
	}

	client, err := g.buildClient(id)
	if err != nil {
		return nil, err
	}

	g.clients[id] = client
	slog.Debug("provider client constructed",
		"provider", id,
		"base_url", client.BaseURL(),
	)
	return client, nil
}

// Adapter returns the cached SDK-style adapter for a provider, constructing
// it on first use.
//
// The returned adapter implements either providers.Chatter or
// providers.ChatModeler depending on the provider's integration style;
// callers must branch on the accessor interface, not on the provider ID.
func (g *Gateway) Adapter(id registry.ProviderID) (interface{}, error) {
	g.mu.RLock()
	adapter, ok := g.adapters[id]
	g.mu.RUnlock()
	if ok {
		return adapter, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if adapter, ok := g.adapters[id]; ok {
		return adapter, nil
	}

	entry, ok := g.registry.Get(id)
	if !ok {
		return nil, &ConfigurationError{Provider: id, Message: "not present in registry"}
	}

	// The adapter shares the cached client when one already exists, so a
	// provider never holds more than one connection pool.
	client, ok := g.clients[id]
	if !ok {
		var err error
		client, err = g.buildClient(id)
		if err != nil {
			return nil, err
		}
		g.clients[id] = client
	}

	switch entry.SDKStyle {
	case registry.SDKStyleNative:
		adapter = providers.NewNativeAdapter(client)
	default:
		adapter = providers.NewCompatAdapter(client)
	}

	g.adapters[id] = adapter
	slog.Debug("provider adapter constructed",
		"provider", id,
		"sdk_style", entry.SDKStyle,
	)
	return adapter, nil
}

// ModelHandle returns a callable handle for the (provider, model) pair,
// resolving the adapter's accessor shape on the way.
func (g *Gateway) ModelHandle(id registry.ProviderID, model string) (providers.ModelHandle, error) {
	adapter, err := g.Adapter(id)
	if err != nil {
		return nil, err
	}

	handle, ok := providers.ResolveHandle(adapter, model)
	if !ok {
		return nil, &ConfigurationError{Provider: id, Message: "adapter exposes no chat accessor"}
	}
	return handle, nil
}

// ClientCount returns the number of cached clients. Used by metrics.
func (g *Gateway) ClientCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

// Close releases every cached client's idle connections.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, client := range g.clients {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close provider client", "provider", id, "error", err)
		}
	}
	g.clients = make(map[registry.ProviderID]*providers.Client)
	g.adapters = make(map[registry.ProviderID]interface{})
	return nil
}

// buildClient resolves config and constructs a client. Callers hold g.mu.
func (g *Gateway) buildClient(id registry.ProviderID) (*providers.Client, error) {
	entry, ok := g.registry.Get(id)
	if !ok {
		return nil, &ConfigurationError{Provider: id, Message: "not present in registry"}
	}

	resolved, err := Resolve(g.registry, g.source, id)
	if err != nil {
		return nil, err
	}

	if resolved.APIKey == "" {
		return nil, &MissingCredentialError{Provider: id, SecretRef: entry.SecretRef}
	}

	return providers.NewClient(providers.ClientConfig{
		Name:                string(id),
		BaseURL:             resolved.BaseURL,
		APIKey:              resolved.APIKey,
		Timeout:             g.opts.Timeout,
		MaxRetries:          g.opts.MaxRetries,
		MaxIdleConns:        g.opts.MaxIdleConns,
		MaxIdleConnsPerHost: g.opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     g.opts.IdleConnTimeout,
	}), nil
}
