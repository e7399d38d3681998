package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumen-ai/prism/pkg/proxy"
	"github.com/lumen-ai/prism/pkg/runtime"
	"github.com/lumen-ai/prism/pkg/secrets"
)

func TestProvidersListingFollowsCatalogOrder(t *testing.T) {
	handler := NewProvidersHandler(handlerRegistry(t, "https://unreachable.example"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/providers", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Providers []proxy.ProviderSummary `json:"providers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	want := []string{"streamer", "buffered", "keyless"}
	if len(body.Providers) != len(want) {
		t.Fatalf("got %d providers, want %d", len(body.Providers), len(want))
	}
	for i, id := range want {
		if string(body.Providers[i].ID) != id {
			t.Errorf("providers[%d] = %q, want %q", i, body.Providers[i].ID, id)
		}
	}

	if body.Providers[0].DefaultModel != "s-default" {
		t.Errorf("DefaultModel = %q", body.Providers[0].DefaultModel)
	}
	if len(body.Providers[0].FreeModels) != 2 {
		t.Errorf("FreeModels = %v", body.Providers[0].FreeModels)
	}
}

func TestProvidersMethodNotAllowed(t *testing.T) {
	handler := NewProvidersHandler(handlerRegistry(t, "https://unreachable.example"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/providers", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	gw := runtime.NewGateway(handlerRegistry(t, "https://unreachable.example"), secrets.NewStaticSource(nil), runtime.DefaultClientOptions())
	handler := NewHealthHandler(gw, "test")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["version"] != "test" {
		t.Errorf("version field = %v", body["version"])
	}
}
