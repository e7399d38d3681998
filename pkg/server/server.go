// Package server assembles the gateway's HTTP surface: routes, the
// middleware chain and the graceful shutdown path.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lumen-ai/prism/pkg/config"
	"github.com/lumen-ai/prism/pkg/proxy/handlers"
	"github.com/lumen-ai/prism/pkg/proxy/middleware"
	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/runtime"
	"github.com/lumen-ai/prism/pkg/secrets"
	"github.com/lumen-ai/prism/pkg/telemetry/metrics"
	"github.com/lumen-ai/prism/pkg/telemetry/tracing"
)

// Server is the assembled gateway process.
type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	gateway    *runtime.Gateway
	tracer     *tracing.Tracer
}

// New builds the server from config: registry, secret source, gateway,
// telemetry, handlers and middleware.
func New(ctx context.Context, cfg *config.Config, version string) (*Server, error) {
	reg := registry.NewDefault()

	defaultProvider := registry.ProviderID(cfg.Gateway.DefaultProvider)
	if !reg.Has(defaultProvider) {
		return nil, fmt.Errorf("default provider %q is not in the catalog", defaultProvider)
	}

	source := secrets.NewEnvSource(cfg.Gateway.SecretPrefix)
	gateway := runtime.NewGateway(reg, source, runtime.ClientOptions{
		Timeout:             cfg.Gateway.Client.Timeout,
		MaxRetries:          cfg.Gateway.Client.MaxRetries,
		MaxIdleConns:        cfg.Gateway.Client.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Gateway.Client.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Gateway.Client.IdleConnTimeout,
	})

	tracer, err := tracing.New(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(metrics.Config{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, gateway.ClientCount)
	}

	mux := http.NewServeMux()
	mux.Handle("/chat", handlers.NewChatHandler(gateway, collector, tracer, defaultProvider))
	mux.Handle("/providers", handlers.NewProvidersHandler(reg))
	mux.Handle("/healthz", handlers.NewHealthHandler(gateway, version))
	if collector != nil {
		mux.Handle(cfg.Metrics.Path, collector.Handler())
	}

	corsConfig := &middleware.CORSConfig{
		Enabled:        cfg.Server.CORS.Enabled,
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		AllowedMethods: cfg.Server.CORS.AllowedMethods,
		AllowedHeaders: cfg.Server.CORS.AllowedHeaders,
		MaxAge:         cfg.Server.CORS.MaxAge,
	}

	// RequestID runs first so every inner layer, recovery included, can
	// correlate its log lines.
	var handler http.Handler = mux
	handler = middleware.CORS(corsConfig)(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.RequestID(handler)

	return &Server{
		cfg:     cfg,
		gateway: gateway,
		tracer:  tracer,
		httpServer: &http.Server{
			Addr:           cfg.Server.ListenAddress,
			Handler:        handler,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}, nil
}

// Handler exposes the middleware-wrapped root handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	slog.Info("gateway listening",
		"address", s.cfg.Server.ListenAddress,
		"default_provider", s.cfg.Gateway.DefaultProvider,
		"metrics", s.cfg.Metrics.Enabled,
		"tracing", s.tracer.Enabled(),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, closes provider clients and flushes
// telemetry.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := s.gateway.Close(); err != nil {
		errs = append(errs, fmt.Errorf("gateway close: %w", err))
	}
	if err := s.tracer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}
	return errors.Join(errs...)
}
