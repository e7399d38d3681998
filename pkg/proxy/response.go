package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// NewStreamID generates the stream identifier echoed in every chunk of a
// chat response.
func NewStreamID() string {
	return fmt.Sprintf("chatcmpl-%s", uuid.NewString())
}

// WriteJSON writes a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}
	return nil
}

// WriteError writes an ErrorPayload using its embedded status.
func WriteError(w http.ResponseWriter, payload *ErrorPayload) error {
	return WriteJSON(w, payload.Status, payload)
}

// SetSSEHeaders sets the headers for a Server-Sent Events response. Call
// before the first write.
func SetSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// WriteSSEEvent writes one "data: <json>\n\n" frame and flushes it so the
// client sees the delta immediately.
func WriteSSEEvent(w http.ResponseWriter, event *StreamEvent) error {
	return writeSSEData(w, event)
}

// WriteSSEError writes a classified failure as an SSE frame. Used when the
// stream has already started and the status line is gone.
func WriteSSEError(w http.ResponseWriter, payload *ErrorPayload) error {
	return writeSSEData(w, map[string]interface{}{"error": payload})
}

// WriteSSEDone writes the terminal "[DONE]" marker.
func WriteSSEDone(w http.ResponseWriter) error {
	if _, err := fmt.Fprint(w, "data: [DONE]\n\n"); err != nil {
		return fmt.Errorf("failed to write SSE done marker: %w", err)
	}
	flush(w)
	return nil
}

func writeSSEData(w http.ResponseWriter, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SSE payload: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("failed to write SSE frame: %w", err)
	}
	flush(w)
	return nil
}

func flush(w http.ResponseWriter) {
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
