package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API status codes the CLI reports specifically.
var (
	// ErrNotFound means the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrRateLimited means the API refused the request (HTTP 403 or 429).
	ErrRateLimited = errors.New("rate limit exceeded")
)

// NetworkError wraps a transport-level failure (DNS, timeout, refused
// connection). These are transient - the user may simply retry.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed API response body.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed API response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// HTTPError captures an unexpected status code and response body.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, string(e.Body))
}
