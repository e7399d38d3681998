package providers

import "context"

// ModelHandle is a callable handle bound to one (provider, model) pair.
// It is what the request handler ultimately invokes for text generation.
type ModelHandle interface {
	// Generate produces a full completion in one call.
	Generate(ctx context.Context, messages []Message) (*Completion, error)

	// Stream produces an incremental completion. The returned channel is
	// closed when the stream ends; a mid-stream failure arrives as a
	// final chunk with Err set.
	Stream(ctx context.Context, messages []Message) (<-chan *StreamChunk, error)
}

// ChatModeler is the accessor shape of the OpenAI-compatible integration
// style: the adapter exposes ChatModel(modelID).
type ChatModeler interface {
	ChatModel(model string) ModelHandle
}

// Chatter is the accessor shape of the native-SDK integration style: the
// adapter exposes Chat(modelID).
//
// Callers obtaining an adapter must branch on which of the two accessor
// interfaces it implements rather than on provider identity; the split is
// about integration style, not about any specific provider.
type Chatter interface {
	Chat(model string) ModelHandle
}

// boundModel binds a client to a concrete model identifier.
type boundModel struct {
	client *Client
	model  string
}

func (b *boundModel) Generate(ctx context.Context, messages []Message) (*Completion, error) {
	return b.client.CreateChatCompletion(ctx, &ChatRequest{Model: b.model, Messages: messages})
}

func (b *boundModel) Stream(ctx context.Context, messages []Message) (<-chan *StreamChunk, error) {
	return b.client.StreamChatCompletion(ctx, &ChatRequest{Model: b.model, Messages: messages, Stream: true})
}

// CompatAdapter is the OpenAI-compatible integration style.
type CompatAdapter struct {
	client *Client
}

// NewCompatAdapter wraps a client in the OpenAI-compatible adapter shape.
func NewCompatAdapter(client *Client) *CompatAdapter {
	return &CompatAdapter{client: client}
}

// ChatModel returns a handle bound to the given model.
func (a *CompatAdapter) ChatModel(model string) ModelHandle {
	return &boundModel{client: a.client, model: model}
}

// NativeAdapter is the native-SDK integration style. The wire format is the
// same OpenAI-compatible shape, but the adapter surface differs, which is
// exactly the polymorphism the handler must tolerate.
type NativeAdapter struct {
	client *Client
}

// NewNativeAdapter wraps a client in the native adapter shape.
func NewNativeAdapter(client *Client) *NativeAdapter {
	return &NativeAdapter{client: client}
}

// Chat returns a handle bound to the given model.
func (a *NativeAdapter) Chat(model string) ModelHandle {
	return &boundModel{client: a.client, model: model}
}

// ResolveHandle obtains a model handle from either adapter shape.
// It prefers the native Chat accessor when both are present, matching the
// SDKs it models.
func ResolveHandle(adapter interface{}, model string) (ModelHandle, bool) {
	switch a := adapter.(type) {
	case Chatter:
		return a.Chat(model), true
	case ChatModeler:
		return a.ChatModel(model), true
	default:
		return nil, false
	}
}
