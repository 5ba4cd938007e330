package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestNewsKeyErrorWrapsMissingKey(t *testing.T) {
	if !errors.Is(ErrNewsAPIKeyMissing, ErrMissingAPIKey) {
		t.Fatal("expected news key error to wrap ErrMissingAPIKey")
	}
	if ErrNewsAPIKeyMissing.Error() != "News API key is not configured" {
		t.Fatalf("unexpected message %q", ErrNewsAPIKeyMissing.Error())
	}
}

func TestStatusErrorMessage(t *testing.T) {
	if got := (&StatusError{Provider: "apifootball", StatusCode: 502}).Error(); got != "apifootball responded with status 502" {
		t.Fatalf("unexpected fallback message %q", got)
	}
	if got := (&StatusError{Message: "API call failed: Not Found"}).Error(); got != "API call failed: Not Found" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"missing key", ErrNewsAPIKeyMissing, false},
		{"breaker open", fmt.Errorf("%w: open", ErrProviderUnavailable), false},
		{"api error", &APIError{Message: "No standings found"}, false},
		{"rate limit", &RateLimitError{StatusCode: 429}, true},
		{"server error", &StatusError{StatusCode: 503}, true},
		{"client error", &StatusError{StatusCode: 404}, false},
		{"transport", errors.New("connection reset"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
