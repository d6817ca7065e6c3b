package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vilaca/github-activity/internal/api"
)

// DefaultPerPage is the number of events the public endpoint returns per
// page. The CLI never paginates, so this is also the upper bound on how
// many events one invocation can display.
const DefaultPerPage = 30

const userAgent = "github-activity-cli"

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements api.Client for the GitHub REST API.
// Follows Single Responsibility Principle - only handles GitHub API
// communication; caching and formatting live elsewhere.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new GitHub client.
// Uses dependency injection for HTTPClient (IoC); authentication, if any,
// is carried by the injected client's transport.
func NewClient(config api.ClientConfig, httpClient HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// UserEvents retrieves the raw public events feed for a username.
func (c *Client) UserEvents(ctx context.Context, username string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/users/%s/events?per_page=%d",
		c.baseURL, url.PathEscape(username), DefaultPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &api.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &api.NetworkError{Err: err}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, api.ErrNotFound
	case http.StatusForbidden, http.StatusTooManyRequests:
		return nil, api.ErrRateLimited
	default:
		return nil, &api.HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
}
