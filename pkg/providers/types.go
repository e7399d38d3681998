// Package providers implements the upstream side of the gateway: the
// provider-agnostic chat types, the typed upstream error taxonomy, and the
// OpenAI-compatible HTTP client with its two adapter styles.
package providers

// Message is a single role-tagged item in a conversation.
// Messages arrive already normalized by the caller; the gateway forwards
// text and attachments verbatim and never reformats them.
type Message struct {
	// Role identifies the sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`

	// Attachments carries binary payloads (images) attached to the
	// message, passed through to the provider untouched.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a binary payload attached to a message.
type Attachment struct {
	// MediaType is the MIME type (e.g. "image/png").
	MediaType string `json:"media_type"`

	// URL references the attachment when it is hosted externally.
	URL string `json:"url,omitempty"`

	// Data holds the raw bytes when the attachment is inlined.
	Data []byte `json:"data,omitempty"`
}

// ChatRequest is a provider-agnostic text-generation request.
type ChatRequest struct {
	// Model is the provider-scoped model identifier.
	Model string `json:"model"`

	// Messages is the full conversation history, oldest first.
	Messages []Message `json:"messages"`

	// Stream requests incremental token delivery.
	Stream bool `json:"stream,omitempty"`
}

// Completion is a full, non-incremental generation result.
type Completion struct {
	// ID is the provider-assigned response identifier.
	ID string `json:"id"`

	// Model is the model that produced the response.
	Model string `json:"model"`

	// Content is the generated text.
	Content string `json:"content"`

	// FinishReason reports why generation stopped (stop, length, ...).
	FinishReason string `json:"finish_reason"`
}

// StreamChunk is one increment of a streaming generation.
// Chunks are delivered in upstream order; the terminal chunk carries either
// a FinishReason or an Err, never both.
type StreamChunk struct {
	// ID is the response identifier, constant across the stream.
	ID string `json:"id"`

	// Model is the model producing the stream.
	Model string `json:"model"`

	// Delta is the incremental text in this chunk.
	Delta string `json:"delta"`

	// FinishReason is set on the terminal chunk of a successful stream.
	FinishReason string `json:"finish_reason,omitempty"`

	// Err is set when the stream failed mid-flight. No further chunks
	// follow a chunk with Err set.
	Err error `json:"-"`
}

// Message role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
