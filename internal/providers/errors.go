package providers

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingAPIKey is returned before any request is made when no upstream key is configured.
	ErrMissingAPIKey = errors.New("API key is not configured")
	// ErrNewsAPIKeyMissing is the news flavor of ErrMissingAPIKey.
	ErrNewsAPIKeyMissing = fmt.Errorf("News %w", ErrMissingAPIKey)
	// ErrProviderUnavailable is returned when a provider is nil or its circuit breaker is open.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// APIError is an error object returned inside a successful upstream response body.
type APIError struct {
	Provider string
	Message  string
	Detail   string
	Body     string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "upstream returned an error"
	}
	return e.Message
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s responded with status %d", e.Provider, e.StatusCode)
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsRetryable reports whether a failed call may succeed if repeated.
// Upstream error payloads, missing keys, open breakers and cancellation are final; 5xx, 429 and transport errors are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrMissingAPIKey) || errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	if _, ok := AsAPIError(err); ok {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return true
}
