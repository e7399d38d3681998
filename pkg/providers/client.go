package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"
)

// ClientConfig carries everything needed to construct a Client.
// It is derived from a registry entry plus the resolved runtime config and
// never changes after construction.
type ClientConfig struct {
	// Name is the provider identifier, used in errors and logs.
	Name string

	// BaseURL is the fully-resolved API endpoint (no placeholders).
	BaseURL string

	// APIKey is the resolved credential sent as a bearer token.
	APIKey string

	// Timeout bounds each HTTP request, including the streaming body.
	Timeout time.Duration

	// MaxRetries is the number of retry attempts after the first try.
	// Only transient failures (network errors, 5xx) are retried.
	MaxRetries int

	// MaxIdleConns caps the connection pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost caps idle connections per upstream host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long idle connections stay pooled.
	IdleConnTimeout time.Duration
}

// Client is an HTTP client bound to one provider's resolved configuration.
//
// The gateway's client cache guarantees at most one Client per provider for
// the process lifetime, so the connection pool here is the provider's only
// pool. Clients are safe for concurrent use.
type Client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient constructs a client with a pooled transport.
// Construction is cheap and side-effect-free; no connection is opened until
// the first request.
func NewClient(config ClientConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: config,
		http: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
	}
}

// Name returns the provider identifier this client is bound to.
func (c *Client) Name() string {
	return c.config.Name
}

// BaseURL returns the resolved endpoint this client targets.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Close releases idle connections. The client must not be used afterwards.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// doRequest performs a POST with bounded retry.
//
// Transient failures (network errors, 5xx) are retried with exponential
// backoff up to MaxRetries; 4xx responses are never retried. When retries
// are configured and exhausted, the last failure is wrapped in
// RetryExhaustedError so the classifier can flag it.
func (c *Client) doRequest(ctx context.Context, url string, body []byte) (*http.Response, error) {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			slog.Debug("retrying provider request",
				"provider", c.config.Name,
				"attempt", attempt,
				"max_retries", c.config.MaxRetries,
				"backoff", backoff,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
		}

		attempts++
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				// Caller cancelled or deadline hit; not retryable.
				return nil, &TimeoutError{Provider: c.config.Name, Timeout: c.config.Timeout}
			}

			lastErr = &UpstreamError{Provider: c.config.Name, Message: "request failed", Cause: err}
			slog.Warn("provider request failed, will retry",
				"provider", c.config.Name,
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, &AuthError{
				Provider:   c.config.Name,
				StatusCode: resp.StatusCode,
				Message:    string(errorBody),
			}

		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, &RateLimitError{
				Provider:   c.config.Name,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
				Message:    string(errorBody),
			}

		case resp.StatusCode < 500:
			return nil, &UpstreamError{
				Provider:   c.config.Name,
				StatusCode: resp.StatusCode,
				Message:    string(errorBody),
			}

		default:
			lastErr = &UpstreamError{
				Provider:   c.config.Name,
				StatusCode: resp.StatusCode,
				Message:    string(errorBody),
			}
			slog.Warn("provider returned server error, will retry",
				"provider", c.config.Name,
				"status", resp.StatusCode,
				"attempt", attempt+1,
			)
		}
	}

	if c.config.MaxRetries > 0 {
		return nil, &RetryExhaustedError{
			Provider: c.config.Name,
			Attempts: attempts,
			Cause:    lastErr,
		}
	}
	return nil, lastErr
}

// parseRetryAfter parses a Retry-After header in either delay-seconds or
// HTTP-date form.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}

	var seconds int
	if _, err := fmt.Sscanf(header, "%d", &seconds); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}

	return 0
}
