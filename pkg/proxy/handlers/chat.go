// Package handlers implements the gateway's HTTP endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/lumen-ai/prism/pkg/providers"
	"github.com/lumen-ai/prism/pkg/proxy"
	"github.com/lumen-ai/prism/pkg/proxy/middleware"
	"github.com/lumen-ai/prism/pkg/registry"
	"github.com/lumen-ai/prism/pkg/runtime"
	"github.com/lumen-ai/prism/pkg/telemetry/metrics"
	"github.com/lumen-ai/prism/pkg/telemetry/tracing"
)

// ChatHandler serves POST /chat: it validates the (provider, model) pair,
// dispatches to the upstream provider and streams the response as SSE.
type ChatHandler struct {
	gateway         *runtime.Gateway
	collector       *metrics.Collector
	tracer          *tracing.Tracer
	defaultProvider registry.ProviderID
}

// NewChatHandler wires the chat endpoint. collector and tracer may be nil
// in tests.
func NewChatHandler(gw *runtime.Gateway, collector *metrics.Collector, tracer *tracing.Tracer, defaultProvider registry.ProviderID) *ChatHandler {
	return &ChatHandler{
		gateway:         gw,
		collector:       collector,
		tracer:          tracer,
		defaultProvider: defaultProvider,
	}
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		_ = proxy.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req proxy.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = proxy.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	providerID := registry.ProviderID(req.Provider)
	if req.Provider == "" {
		providerID = h.defaultProvider
	}

	// Validation runs against the catalog alone. A malformed request must
	// be rejected before any credential is read or client is built.
	if err := runtime.ValidateModel(h.gateway.Registry(), providerID, req.Model); err != nil {
		h.writeValidationError(w, r.Context(), err, providerID, req.Model)
		return
	}

	if len(req.Messages) == 0 {
		_ = proxy.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing messages"})
		return
	}

	start := time.Now()
	status := h.dispatch(w, r, providerID, req)
	if h.collector != nil {
		h.collector.RecordRequest(string(providerID), req.Model, status, time.Since(start))
	}
}

// dispatch resolves the model handle and relays the completion, returning
// the effective response status for metrics.
func (h *ChatHandler) dispatch(w http.ResponseWriter, r *http.Request, providerID registry.ProviderID, req proxy.ChatRequest) int {
	ctx := r.Context()

	handle, err := h.gateway.ModelHandle(providerID, req.Model)
	if err != nil {
		payload := h.errorPayload(ctx, err, providerID, req.Model)
		_ = proxy.WriteError(w, payload)
		return payload.Status
	}

	var span oteltrace.Span
	var dispatchErr error
	if h.tracer != nil {
		ctx, span = h.tracer.StartDispatch(ctx, string(providerID), req.Model)
		defer func() { tracing.EndDispatch(span, dispatchErr) }()
	}

	entry, _ := h.gateway.Registry().Get(providerID)
	var status int
	if entry != nil && !entry.SupportsStreaming {
		status, dispatchErr = h.serveBuffered(ctx, w, handle, providerID, req)
	} else {
		status, dispatchErr = h.serveStream(ctx, w, handle, providerID, req)
	}
	return status
}

// serveStream relays upstream chunks as SSE frames.
func (h *ChatHandler) serveStream(ctx context.Context, w http.ResponseWriter, handle providers.ModelHandle, providerID registry.ProviderID, req proxy.ChatRequest) (int, error) {
	chunks, err := handle.Stream(ctx, req.Messages)
	if err != nil {
		// The stream never started, so a plain JSON error still works.
		payload := h.errorPayload(ctx, err, providerID, req.Model)
		_ = proxy.WriteError(w, payload)
		return payload.Status, err
	}

	proxy.SetSSEHeaders(w)
	streamID := proxy.NewStreamID()
	status := http.StatusOK
	var streamErr error

	for chunk := range chunks {
		if chunk.Err != nil {
			// Headers are gone; the failure travels in-band.
			payload := h.errorPayload(ctx, chunk.Err, providerID, req.Model)
			_ = proxy.WriteSSEError(w, payload)
			status = payload.Status
			streamErr = chunk.Err
			break
		}

		event := &proxy.StreamEvent{
			ID:           streamID,
			Model:        req.Model,
			Delta:        chunk.Delta,
			FinishReason: chunk.FinishReason,
		}
		if err := proxy.WriteSSEEvent(w, event); err != nil {
			// Client went away; the upstream drain stops via ctx.
			break
		}
		if h.collector != nil {
			h.collector.RecordStreamEvent(string(providerID))
		}
	}

	_ = proxy.WriteSSEDone(w)
	return status, streamErr
}

// serveBuffered handles providers without streaming support: one full
// completion, replayed as a single SSE frame so clients see a uniform
// wire format.
func (h *ChatHandler) serveBuffered(ctx context.Context, w http.ResponseWriter, handle providers.ModelHandle, providerID registry.ProviderID, req proxy.ChatRequest) (int, error) {
	completion, err := handle.Generate(ctx, req.Messages)
	if err != nil {
		payload := h.errorPayload(ctx, err, providerID, req.Model)
		_ = proxy.WriteError(w, payload)
		return payload.Status, err
	}

	proxy.SetSSEHeaders(w)
	event := &proxy.StreamEvent{
		ID:           proxy.NewStreamID(),
		Model:        req.Model,
		Delta:        completion.Content,
		FinishReason: completion.FinishReason,
	}
	_ = proxy.WriteSSEEvent(w, event)
	if h.collector != nil {
		h.collector.RecordStreamEvent(string(providerID))
	}
	_ = proxy.WriteSSEDone(w)
	return http.StatusOK, nil
}

// errorPayload logs the failure with its provider and model context, then
// classifies it for the client. The log line carries the raw error; the
// payload carries only the classified message.
func (h *ChatHandler) errorPayload(ctx context.Context, err error, providerID registry.ProviderID, model string) *proxy.ErrorPayload {
	classified := proxy.Classify(err)

	slog.ErrorContext(ctx, "chat request failed",
		"provider", providerID,
		"model", model,
		"status", classified.Status,
		"retry_exhausted", classified.RetryExhausted,
		"request_id", middleware.GetRequestID(ctx),
		"error", err,
	)

	return &proxy.ErrorPayload{
		Error:            classified.Message,
		Status:           classified.Status,
		Provider:         string(providerID),
		Model:            model,
		IsRetryExhausted: classified.RetryExhausted,
	}
}

func (h *ChatHandler) writeValidationError(w http.ResponseWriter, ctx context.Context, err error, providerID registry.ProviderID, model string) {
	var valErr *runtime.ValidationError
	if !errors.As(err, &valErr) {
		_ = proxy.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	slog.WarnContext(ctx, "rejected chat request",
		"provider", providerID,
		"model", model,
		"reason", valErr.Reason,
		"request_id", middleware.GetRequestID(ctx),
	)

	if valErr.Reason == runtime.ReasonUnknownProvider {
		_ = proxy.WriteJSON(w, http.StatusBadRequest, &proxy.InvalidProviderPayload{
			Error:    "Invalid provider",
			Provider: string(providerID),
		})
		return
	}

	_ = proxy.WriteJSON(w, http.StatusBadRequest, &proxy.InvalidModelPayload{
		Error:    "Invalid model",
		Provider: string(providerID),
		Model:    model,
	})
}
