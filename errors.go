package driftmail

import (
	"errors"
	"fmt"

	"github.com/driftmail/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrNoDomainsAvailable is returned by CreateAccount when the
	// upstream service offers no usable domains, or the domain listing
	// itself cannot be fetched.
	ErrNoDomainsAvailable = errors.New("no domains available")

	// ErrAccountCreationFailed is returned by CreateAccount when the
	// upstream registration call fails.
	ErrAccountCreationFailed = errors.New("account creation failed")

	// ErrLoginFailed is returned by CreateAccount when the token
	// exchange fails or yields no token.
	ErrLoginFailed = errors.New("login failed")

	// ErrFetchFailed is returned by Messages when any page of the
	// listing cannot be fetched. Partial results are never returned.
	ErrFetchFailed = errors.New("fetching messages failed")

	// ErrUnauthorized is returned when the bearer token is invalid or
	// expired.
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrMessageNotFound is returned when a message does not exist.
	ErrMessageNotFound = errors.New("message not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrMessageNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
