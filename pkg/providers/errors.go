package providers

import (
	"fmt"
	"time"
)

// UpstreamError is a failure reported by a provider with an explicit HTTP
// status code. The status is carried verbatim so the classifier can mirror
// it to the caller.
type UpstreamError struct {
	// Provider is the provider that returned the error.
	Provider string

	// StatusCode is the upstream HTTP status (0 if not applicable).
	StatusCode int

	// Message is the upstream error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %q error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %q error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// RateLimitError is an upstream rate-limit rejection (HTTP 429).
type RateLimitError struct {
	// Provider is the provider that rate limited the request.
	Provider string

	// RetryAfter is the provider-suggested wait, if given.
	RetryAfter time.Duration

	// Message is the upstream error message.
	Message string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %q rate limit exceeded (retry after %s): %s", e.Provider, e.RetryAfter, e.Message)
	}
	return fmt.Sprintf("provider %q rate limit exceeded: %s", e.Provider, e.Message)
}

// AuthError is an upstream credential rejection (HTTP 401/403).
type AuthError struct {
	// Provider is the provider that rejected authentication.
	Provider string

	// StatusCode is the upstream status, carried verbatim so the
	// classifier can mirror it (401 vs 403 matters to callers).
	StatusCode int

	// Message is the upstream error message.
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("provider %q authentication failed: %s", e.Provider, e.Message)
}

// TimeoutError is a request that exceeded the configured timeout.
type TimeoutError struct {
	// Provider is the provider where the timeout occurred.
	Provider string

	// Timeout is the configured timeout duration.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("provider %q request timeout after %s", e.Provider, e.Timeout)
}

// ParseError is a malformed upstream response.
type ParseError struct {
	// Provider is the provider that returned the malformed response.
	Provider string

	// RawResponse is the body that failed to parse.
	RawResponse string

	// Cause is the underlying parse error.
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("provider %q response parse error: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// StreamError is a failure that occurred after a stream was established.
type StreamError struct {
	// Provider is the provider whose stream failed.
	Provider string

	// Message describes the failure.
	Message string

	// Cause is the underlying error.
	Cause error
}

func (e *StreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %q stream error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider %q stream error: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying error for error chain support.
func (e *StreamError) Unwrap() error {
	return e.Cause
}

// RetryExhaustedError wraps the last failure after the client's bounded
// retry loop gave up. The classifier unwraps it to the inner cause before
// extracting a status, so a wrapped 503 still classifies as 503 with the
// retry-exhausted flag set.
type RetryExhaustedError struct {
	// Provider is the provider that was retried.
	Provider string

	// Attempts is the total number of attempts made.
	Attempts int

	// Cause is the failure from the final attempt.
	Cause error
}

func (e *RetryExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider %q: retries exhausted after %d attempts: %v", e.Provider, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("provider %q: retries exhausted after %d attempts", e.Provider, e.Attempts)
}

// Unwrap returns the failure from the final attempt.
func (e *RetryExhaustedError) Unwrap() error {
	return e.Cause
}
