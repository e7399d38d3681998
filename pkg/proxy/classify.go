package proxy

import (
	"errors"
	"regexp"

	"github.com/lumen-ai/prism/pkg/providers"
)

// rateLimitPattern matches rate-limit wording in upstream error text when
// no structured status is available.
var rateLimitPattern = regexp.MustCompile(`(?i)rate.?limit|429|too many requests|quota`)

// ClassifiedError is the outcome of mapping an upstream failure to a
// client-facing status and message.
type ClassifiedError struct {
	Message        string
	Status         int
	RetryExhausted bool
}

// Classify maps an error from the provider layer to a response status.
//
// A RetryExhaustedError is unwrapped first and its cause classified, so a
// 503 that survived the retry budget still reports 503. Structured errors
// carry their own status; unstructured ones fall back to message matching
// for rate-limit wording, then to 500. The returned message is the error's
// own text, never internal detail.
func Classify(err error) ClassifiedError {
	if err == nil {
		return ClassifiedError{Message: "Internal server error", Status: 500}
	}

	var exhausted *providers.RetryExhaustedError
	if errors.As(err, &exhausted) {
		if exhausted.Cause == nil {
			return ClassifiedError{Message: exhausted.Error(), Status: 429, RetryExhausted: true}
		}
		inner := Classify(exhausted.Cause)
		inner.RetryExhausted = true
		return inner
	}

	var rateLimit *providers.RateLimitError
	if errors.As(err, &rateLimit) {
		return ClassifiedError{Message: rateLimit.Error(), Status: 429}
	}

	var auth *providers.AuthError
	if errors.As(err, &auth) {
		status := auth.StatusCode
		if status == 0 {
			status = 401
		}
		return ClassifiedError{Message: auth.Error(), Status: status}
	}

	var timeout *providers.TimeoutError
	if errors.As(err, &timeout) {
		return ClassifiedError{Message: timeout.Error(), Status: 504}
	}

	var upstream *providers.UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		return ClassifiedError{Message: upstream.Error(), Status: upstream.StatusCode}
	}

	if rateLimitPattern.MatchString(err.Error()) {
		return ClassifiedError{Message: err.Error(), Status: 429}
	}

	return ClassifiedError{Message: err.Error(), Status: 500}
}
