package github

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/vilaca/github-activity/internal/api"
)

// mockHTTPClient is a test double for HTTPClient.
type mockHTTPClient struct {
	doFunc  func(req *http.Request) (*http.Response, error)
	lastReq *http.Request
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.lastReq = req
	return m.doFunc(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// TestUserEvents_Success tests that a 200 response body is returned as-is
// and the expected URL and headers are used.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestUserEvents_Success(t *testing.T) {
	// Arrange
	mock := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return response(http.StatusOK, `[{"type":"PushEvent"}]`), nil
		},
	}
	client := NewClient(api.ClientConfig{}, mock)

	// Act
	body, err := client.UserEvents(context.Background(), "octocat")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `[{"type":"PushEvent"}]` {
		t.Errorf("expected the raw body, got %s", body)
	}

	wantURL := "https://api.github.com/users/octocat/events?per_page=30"
	if got := mock.lastReq.URL.String(); got != wantURL {
		t.Errorf("expected URL %s, got %s", wantURL, got)
	}
	if got := mock.lastReq.Header.Get("Accept"); got != "application/vnd.github+json" {
		t.Errorf("expected GitHub media type, got %q", got)
	}
	if got := mock.lastReq.Header.Get("X-GitHub-Api-Version"); got == "" {
		t.Error("expected the API version header to be set")
	}
	if got := mock.lastReq.Header.Get("User-Agent"); got != userAgent {
		t.Errorf("expected User-Agent %q, got %q", userAgent, got)
	}
}

// TestUserEvents_CustomBaseURL tests that a configured base URL replaces
// the default one.
func TestUserEvents_CustomBaseURL(t *testing.T) {
	// Arrange
	mock := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return response(http.StatusOK, `[]`), nil
		},
	}
	client := NewClient(api.ClientConfig{BaseURL: "https://github.example.com/api/v3"}, mock)

	// Act
	if _, err := client.UserEvents(context.Background(), "octocat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if !strings.HasPrefix(mock.lastReq.URL.String(), "https://github.example.com/api/v3/users/octocat") {
		t.Errorf("expected the custom base URL, got %s", mock.lastReq.URL)
	}
}

// TestUserEvents_NotFound tests the HTTP 404 mapping.
func TestUserEvents_NotFound(t *testing.T) {
	// Arrange
	mock := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return response(http.StatusNotFound, `{"message":"Not Found"}`), nil
		},
	}
	client := NewClient(api.ClientConfig{}, mock)

	// Act
	_, err := client.UserEvents(context.Background(), "nonexistent-user-xyz")

	// Assert
	if !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestUserEvents_RateLimited tests that both 403 and 429 map to the rate
// limit error.
func TestUserEvents_RateLimited(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusTooManyRequests} {
		// Arrange
		mock := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return response(status, `{"message":"rate limited"}`), nil
			},
		}
		client := NewClient(api.ClientConfig{}, mock)

		// Act
		_, err := client.UserEvents(context.Background(), "octocat")

		// Assert
		if !errors.Is(err, api.ErrRateLimited) {
			t.Errorf("status %d: expected ErrRateLimited, got %v", status, err)
		}
	}
}

// TestUserEvents_TransportFailure tests that a transport error maps to
// NetworkError.
func TestUserEvents_TransportFailure(t *testing.T) {
	// Arrange
	mock := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	client := NewClient(api.ClientConfig{}, mock)

	// Act
	_, err := client.UserEvents(context.Background(), "octocat")

	// Assert
	var netErr *api.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

// TestUserEvents_UnexpectedStatus tests that other statuses surface as an
// HTTPError carrying the status code.
func TestUserEvents_UnexpectedStatus(t *testing.T) {
	// Arrange
	mock := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return response(http.StatusInternalServerError, "boom"), nil
		},
	}
	client := NewClient(api.ClientConfig{}, mock)

	// Act
	_, err := client.UserEvents(context.Background(), "octocat")

	// Assert
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", httpErr.StatusCode)
	}
}
