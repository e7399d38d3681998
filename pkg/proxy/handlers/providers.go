package handlers

import (
	"net/http"

	"github.com/lumen-ai/prism/pkg/proxy"
	"github.com/lumen-ai/prism/pkg/registry"
)

// ProvidersHandler serves GET /providers: the catalog projection clients
// use to populate model pickers. Output follows catalog order.
type ProvidersHandler struct {
	registry *registry.Registry
}

// NewProvidersHandler wires the catalog listing endpoint.
func NewProvidersHandler(reg *registry.Registry) *ProvidersHandler {
	return &ProvidersHandler{registry: reg}
}

func (h *ProvidersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		_ = proxy.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	summaries := make([]proxy.ProviderSummary, 0, h.registry.Len())
	for _, id := range h.registry.All() {
		entry, ok := h.registry.Get(id)
		if !ok {
			continue
		}
		summaries = append(summaries, proxy.ProviderSummary{
			ID:           id,
			Category:     entry.Category,
			DefaultModel: entry.DefaultModel,
			FreeModels:   entry.FreeModels,
		})
	}

	_ = proxy.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"providers": summaries,
	})
}
