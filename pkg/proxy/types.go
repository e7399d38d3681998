// Package proxy defines the gateway's HTTP wire formats and the error
// classification that maps internal failures to response payloads.
package proxy

import (
	"github.com/lumen-ai/prism/pkg/providers"
	"github.com/lumen-ai/prism/pkg/registry"
)

// ChatRequest is the inbound body for POST /chat.
type ChatRequest struct {
	Provider string              `json:"provider"`
	Model    string              `json:"model"`
	Messages []providers.Message `json:"messages"`
}

// StreamEvent is one SSE data payload of a chat stream.
type StreamEvent struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Delta        string `json:"delta,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
}

// ErrorPayload is the JSON body for failed chat requests, and the payload
// of an SSE error event when the failure happens mid-stream.
type ErrorPayload struct {
	Error            string `json:"error"`
	Status           int    `json:"status"`
	Provider         string `json:"provider,omitempty"`
	Model            string `json:"model,omitempty"`
	IsRetryExhausted bool   `json:"isRetryExhausted"`
}

// InvalidProviderPayload is the 400 body for an unknown provider.
type InvalidProviderPayload struct {
	Error    string `json:"error"`
	Provider string `json:"provider"`
}

// InvalidModelPayload is the 400 body for a model the provider does not
// offer.
type InvalidModelPayload struct {
	Error    string `json:"error"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// ProviderSummary is one entry of the GET /providers listing.
type ProviderSummary struct {
	ID           registry.ProviderID `json:"id"`
	Category     registry.Category   `json:"category"`
	DefaultModel string              `json:"defaultModel,omitempty"`
	FreeModels   []string            `json:"freeModels,omitempty"`
}
