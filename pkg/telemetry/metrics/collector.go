// Package metrics exposes the gateway's Prometheus instrumentation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config names the metric namespace and subsystem.
type Config struct {
	Namespace string
	Subsystem string
}

// DefaultConfig returns the standard prism_gateway_* naming.
func DefaultConfig() Config {
	return Config{Namespace: "prism", Subsystem: "gateway"}
}

// Collector owns the registry and the gateway's metric families.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	streamEvents    *prometheus.CounterVec
	cachedClients   prometheus.GaugeFunc
}

// NewCollector creates and registers the gateway metrics.
//
// clientCount feeds the cached-clients gauge; pass the gateway's
// ClientCount method. The Go runtime and process collectors are
// registered alongside.
func NewCollector(cfg Config, clientCount func() int) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Chat requests processed, by provider, model and status code",
			},
			[]string{"provider", "model", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "End-to-end chat request duration",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"provider"},
		),

		streamEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "stream_events_total",
				Help:      "SSE frames written to clients",
			},
			[]string{"provider"},
		),

		cachedClients: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cached_clients",
				Help:      "Provider clients currently held in the cache",
			},
			func() float64 { return float64(clientCount()) },
		),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.streamEvents,
		c.cachedClients,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// RecordRequest records one completed chat request.
func (c *Collector) RecordRequest(provider, model string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(provider, model, statusLabel(status)).Inc()
	c.requestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordStreamEvent counts one SSE frame sent to a client.
func (c *Collector) RecordStreamEvent(provider string) {
	c.streamEvents.WithLabelValues(provider).Inc()
}

// Handler returns the scrape endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
