package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/lumen-ai/prism/pkg/proxy"
	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/runtime"
	"github.com/lumen-ai/prism/pkg/secrets"
)

// spySource counts lookups so tests can prove a path never read secrets.
type spySource struct {
	inner secrets.Source

	mu    sync.Mutex
	calls int
}

func (s *spySource) Lookup(name string) (string, bool) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.inner.Lookup(name)
}

func (s *spySource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func handlerRegistry(t *testing.T, baseURL string) *registry.Registry {
	t.Helper()

	entries := map[registry.ProviderID]*registry.Entry{
		"streamer": {
			Category:          registry.CategoryFree,
			SecretRef:         "STREAMER_API_KEY",
			BaseURLTemplate:   baseURL,
			DefaultModel:      "s-default",
			FreeModels:        []string{"s-default", "s-mini"},
			SupportsStreaming: true,
		},
		"buffered": {
			Category:          registry.CategoryFree,
			SecretRef:         "BUFFERED_API_KEY",
			BaseURLTemplate:   baseURL,
			DefaultModel:      "b-default",
			FreeModels:        []string{"b-default"},
			SupportsStreaming: false,
		},
		"keyless": {
			Category:          registry.CategoryTrial,
			SecretRef:         "KEYLESS_API_KEY",
			BaseURLTemplate:   baseURL,
			DefaultModel:      "k-default",
			FreeModels:        []string{"k-default"},
			SupportsStreaming: true,
		},
	}
	order := []registry.ProviderID{"streamer", "buffered", "keyless"}
	reg, err := registry.New(order, entries)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	return reg
}

func newTestHandler(t *testing.T, baseURL string) (*ChatHandler, *spySource) {
	t.Helper()

	source := &spySource{inner: secrets.NewStaticSource(map[string]string{
		"STREAMER_API_KEY": "sk-streamer",
		"BUFFERED_API_KEY": "sk-buffered",
	})}
	gw := runtime.NewGateway(handlerRegistry(t, baseURL), source, runtime.DefaultClientOptions())
	t.Cleanup(func() { _ = gw.Close() })

	return NewChatHandler(gw, nil, nil, "streamer"), source
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestChatUnknownProviderRejectedWithoutSecrets(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream was called for an invalid provider")
	}))
	defer upstream.Close()

	handler, source := newTestHandler(t, upstream.URL)

	rec := postChat(t, handler, `{"provider":"ghost","model":"x","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var payload proxy.InvalidProviderPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if payload.Error != "Invalid provider" || payload.Provider != "ghost" {
		t.Errorf("payload = %+v", payload)
	}
	if source.count() != 0 {
		t.Errorf("secret source consulted %d times for an invalid provider", source.count())
	}
}

func TestChatUnknownModelRejected(t *testing.T) {
	handler, source := newTestHandler(t, "https://unreachable.example")

	rec := postChat(t, handler, `{"provider":"streamer","model":"not-offered","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var payload proxy.InvalidModelPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if payload.Error != "Invalid model" || payload.Provider != "streamer" || payload.Model != "not-offered" {
		t.Errorf("payload = %+v", payload)
	}
	if source.count() != 0 {
		t.Errorf("secret source consulted %d times for an invalid model", source.count())
	}
}

func TestChatMissingMessages(t *testing.T) {
	handler, _ := newTestHandler(t, "https://unreachable.example")

	rec := postChat(t, handler, `{"provider":"streamer","model":"s-default","messages":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChatMissingCredential(t *testing.T) {
	handler, _ := newTestHandler(t, "https://unreachable.example")

	rec := postChat(t, handler, `{"provider":"keyless","model":"k-default","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var payload proxy.ErrorPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.Contains(payload.Error, "KEYLESS_API_KEY") {
		t.Errorf("error does not name the missing credential: %q", payload.Error)
	}
	if payload.Provider != "keyless" {
		t.Errorf("Provider = %q", payload.Provider)
	}
}

func TestChatStreamsSSE(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, delta := range []string{"Hel", "lo"} {
			fmt.Fprintf(w, "data: {\"id\":\"up-1\",\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", delta)
		}
		fmt.Fprint(w, "data: {\"id\":\"up-1\",\"choices\":[{\"delta\":{},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer upstream.Close()

	handler, _ := newTestHandler(t, upstream.URL)

	rec := postChat(t, handler, `{"provider":"streamer","model":"s-default","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"delta":"Hel"`) || !strings.Contains(body, `"delta":"lo"`) {
		t.Errorf("deltas missing from stream:\n%s", body)
	}
	if !strings.Contains(body, `"finishReason":"stop"`) {
		t.Errorf("finish reason missing from stream:\n%s", body)
	}
	if !strings.HasSuffix(strings.TrimSpace(body), "data: [DONE]") {
		t.Errorf("stream not terminated with [DONE]:\n%s", body)
	}
	if !strings.Contains(body, `"id":"chatcmpl-`) {
		t.Errorf("stream events missing generated stream ID:\n%s", body)
	}
}

func TestChatDefaultProviderWhenOmitted(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"id\":\"up-1\",\"choices\":[{\"delta\":{\"content\":\"ok\"},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer upstream.Close()

	handler, _ := newTestHandler(t, upstream.URL)

	// No provider in the body: the configured default ("streamer") applies,
	// and its model set drives validation.
	rec := postChat(t, handler, `{"model":"s-default","messages":[{"role":"user","content":"hi"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
}

func TestChatBufferedProviderReplaysAsSSE(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"up-2","model":"b-default","choices":[{"message":{"role":"assistant","content":"full answer"},"finish_reason":"stop"}]}`)
	}))
	defer upstream.Close()

	handler, _ := newTestHandler(t, upstream.URL)

	rec := postChat(t, handler, `{"provider":"buffered","model":"b-default","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"delta":"full answer"`) {
		t.Errorf("buffered completion missing from stream:\n%s", body)
	}
	if strings.Count(body, "data: ") != 2 {
		t.Errorf("want exactly one data frame plus [DONE], got:\n%s", body)
	}
}

func TestChatUpstreamRateLimitPassesThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		http.Error(w, `{"error":{"message":"rate limit exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	handler, _ := newTestHandler(t, upstream.URL)

	rec := postChat(t, handler, `{"provider":"streamer","model":"s-default","messages":[{"role":"user","content":"hi"}]}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429, body: %s", rec.Code, rec.Body.String())
	}
	var payload proxy.ErrorPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if payload.IsRetryExhausted {
		t.Error("IsRetryExhausted = true for a non-retried rate limit")
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	handler, _ := newTestHandler(t, "https://unreachable.example")

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
