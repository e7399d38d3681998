// Package middleware provides the HTTP middleware chain for the gateway.
package middleware

// contextKey is a private type so middleware context values cannot collide
// with keys from other packages.
type contextKey string

const (
	// RequestIDKey stores the per-request correlation ID.
	RequestIDKey contextKey = "request_id"

	// StartTimeKey stores the request arrival time for latency reporting.
	StartTimeKey contextKey = "start_time"
)
