package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollectorExposesRecordedMetrics(t *testing.T) {
	c := NewCollector(DefaultConfig(), func() int { return 3 })

	c.RecordRequest("groq", "llama-3.3-70b-versatile", 200, 750*time.Millisecond)
	c.RecordRequest("groq", "llama-3.3-70b-versatile", 429, 10*time.Millisecond)
	c.RecordStreamEvent("groq")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()

	for _, want := range []string{
		`prism_gateway_requests_total{model="llama-3.3-70b-versatile",provider="groq",status="2xx"} 1`,
		`prism_gateway_requests_total{model="llama-3.3-70b-versatile",provider="groq",status="4xx"} 1`,
		`prism_gateway_stream_events_total{provider="groq"} 1`,
		`prism_gateway_cached_clients 3`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{204, "2xx"},
		{400, "4xx"},
		{429, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.status); got != tt.want {
			t.Errorf("statusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
