package handlers

import (
	"net/http"

	"github.com/lumen-ai/prism/pkg/proxy"
	"github.com/lumen-ai/prism/pkg/runtime"
)

// HealthHandler serves GET /healthz. The gateway is healthy when it is up;
// upstream providers are not probed, a dead upstream is a per-request
// failure, not a process failure.
type HealthHandler struct {
	gateway *runtime.Gateway
	version string
}

// NewHealthHandler wires the liveness endpoint.
func NewHealthHandler(gw *runtime.Gateway, version string) *HealthHandler {
	return &HealthHandler{gateway: gw, version: version}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_ = proxy.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"version":        h.version,
		"cached_clients": h.gateway.ClientCount(),
	})
}
