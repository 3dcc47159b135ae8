package driftmail

import (
	"errors"
	"fmt"
	"testing"

	"github.com/driftmail/client-go/internal/api"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with message",
			err:  &APIError{StatusCode: 422, Message: "address taken"},
			want: "API error 422: address taken",
		},
		{
			name: "without message",
			err:  &APIError{StatusCode: 500},
			want: "API error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		status int
		target error
		want   bool
	}{
		{401, ErrUnauthorized, true},
		{404, ErrMessageNotFound, true},
		{429, ErrRateLimited, true},
		{401, ErrMessageNotFound, false},
		{500, ErrUnauthorized, false},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.status}
		if got := errors.Is(err, tt.target); got != tt.want {
			t.Errorf("errors.Is(%d, %v) = %v, want %v", tt.status, tt.target, got, tt.want)
		}
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if wrapError(nil) != nil {
			t.Error("wrapError(nil) != nil")
		}
	})

	t.Run("api error", func(t *testing.T) {
		inner := &api.APIError{StatusCode: 401, Message: "bad token"}
		err := wrapError(inner)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("wrapError() = %T, want *APIError", err)
		}
		if apiErr.StatusCode != 401 || apiErr.Message != "bad token" {
			t.Errorf("wrapped = %+v, want 401/bad token", apiErr)
		}
		if !errors.Is(err, ErrUnauthorized) {
			t.Error("wrapped error does not match ErrUnauthorized")
		}
	})

	t.Run("network error", func(t *testing.T) {
		cause := errors.New("connection refused")
		inner := &api.NetworkError{Err: cause, URL: "https://x", Attempt: 2}
		err := wrapError(inner)

		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("wrapError() = %T, want *NetworkError", err)
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error does not unwrap to cause")
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("something else")
		if wrapError(plain) != plain {
			t.Error("plain error was not passed through")
		}
	})
}

func TestSentinelWrapping(t *testing.T) {
	// Operation sentinels wrap the translated cause; both must be
	// visible to errors.Is.
	cause := wrapError(&api.APIError{StatusCode: 429, Message: "slow down"})
	err := fmt.Errorf("%w: %w", ErrFetchFailed, cause)

	if !errors.Is(err, ErrFetchFailed) {
		t.Error("errors.Is(err, ErrFetchFailed) = false")
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false")
	}
}
