package providers

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Wire types for the OpenAI-compatible chat completions API.
// Every catalog provider fronts this shape, either natively or through an
// OpenAI-compatible endpoint, so a single codec serves the whole catalog.

type wireImageURL struct {
	URL string `json:"url"`
}

type wireContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *wireImageURL `json:"image_url,omitempty"`
}

type wireMessage struct {
	Role string `json:"role"`
	// Content is a plain string for text-only messages and a part array
	// when attachments are present.
	Content interface{} `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Stream   bool          `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type chatStreamResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// toWireMessages converts agnostic messages to the wire shape.
// Attachments are forwarded verbatim as image_url parts; inline data
// becomes a data URL.
func toWireMessages(messages []Message) []wireMessage {
	wire := make([]wireMessage, 0, len(messages))

	for _, msg := range messages {
		if len(msg.Attachments) == 0 {
			wire = append(wire, wireMessage{Role: msg.Role, Content: msg.Content})
			continue
		}

		parts := make([]wireContentPart, 0, len(msg.Attachments)+1)
		if msg.Content != "" {
			parts = append(parts, wireContentPart{Type: "text", Text: msg.Content})
		}
		for _, att := range msg.Attachments {
			url := att.URL
			if url == "" && len(att.Data) > 0 {
				url = fmt.Sprintf("data:%s;base64,%s", att.MediaType, base64.StdEncoding.EncodeToString(att.Data))
			}
			parts = append(parts, wireContentPart{Type: "image_url", ImageURL: &wireImageURL{URL: url}})
		}
		wire = append(wire, wireMessage{Role: msg.Role, Content: parts})
	}

	return wire
}

// CreateChatCompletion performs a non-streaming generation.
func (c *Client) CreateChatCompletion(ctx context.Context, req *ChatRequest) (*Completion, error) {
	body, err := json.Marshal(&chatCompletionRequest{
		Model:    req.Model,
		Messages: toWireMessages(req.Messages),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, c.config.BaseURL+"/chat/completions", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var wire chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &ParseError{
			Provider: c.config.Name,
			Cause:    fmt.Errorf("failed to decode response: %w", err),
		}
	}

	if len(wire.Choices) == 0 {
		return nil, &ParseError{
			Provider: c.config.Name,
			Cause:    fmt.Errorf("response contained no choices"),
		}
	}

	return &Completion{
		ID:           wire.ID,
		Model:        wire.Model,
		Content:      wire.Choices[0].Message.Content,
		FinishReason: wire.Choices[0].FinishReason,
	}, nil
}

// StreamChatCompletion performs a streaming generation.
//
// It returns a channel of chunks in upstream order. The channel is closed
// when the stream ends; a mid-stream failure is delivered as a final chunk
// with Err set. Cancelling the context tears down the upstream connection
// and ends the stream promptly.
func (c *Client) StreamChatCompletion(ctx context.Context, req *ChatRequest) (<-chan *StreamChunk, error) {
	body, err := json.Marshal(&chatCompletionRequest{
		Model:    req.Model,
		Messages: toWireMessages(req.Messages),
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, c.config.BaseURL+"/chat/completions", body)
	if err != nil {
		return nil, err
	}

	chunks := make(chan *StreamChunk)
	go func() {
		defer close(chunks)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			line := scanner.Text()
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				return
			}

			var wire chatStreamResponse
			if err := json.Unmarshal([]byte(data), &wire); err != nil {
				c.sendChunk(ctx, chunks, &StreamChunk{
					Err: &ParseError{
						Provider:    c.config.Name,
						RawResponse: data,
						Cause:       fmt.Errorf("failed to parse stream chunk: %w", err),
					},
				})
				return
			}
			if len(wire.Choices) == 0 {
				continue
			}

			chunk := &StreamChunk{
				ID:    wire.ID,
				Model: wire.Model,
				Delta: wire.Choices[0].Delta.Content,
			}
			if wire.Choices[0].FinishReason != nil {
				chunk.FinishReason = *wire.Choices[0].FinishReason
			}
			if !c.sendChunk(ctx, chunks, chunk) {
				return
			}
		}

		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			c.sendChunk(ctx, chunks, &StreamChunk{
				Err: &StreamError{
					Provider: c.config.Name,
					Message:  "stream read failed",
					Cause:    err,
				},
			})
		}
	}()

	return chunks, nil
}

// sendChunk delivers a chunk unless the context has been cancelled.
// It reports false when the consumer is gone.
func (c *Client) sendChunk(ctx context.Context, chunks chan<- *StreamChunk, chunk *StreamChunk) bool {
	select {
	case chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
