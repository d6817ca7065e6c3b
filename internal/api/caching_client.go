package api

import (
	"context"
	"encoding/json"

	"github.com/vilaca/github-activity/internal/cache"
)

// CachingClient wraps a Client with caching capabilities.
// Follows Decorator pattern to add caching without modifying the
// underlying client. Staleness is handled entirely by the store: a stale
// entry looks like a miss, so the decorator only sees hit or miss.
type CachingClient struct {
	client Client
	store  cache.Store
	logger Logger
}

// NewCachingClient creates a new caching client wrapper.
func NewCachingClient(client Client, store cache.Store, logger Logger) *CachingClient {
	return &CachingClient{
		client: client,
		store:  store,
		logger: logger,
	}
}

// UserEvents retrieves the raw events feed with caching. A cached body
// that is no longer valid JSON is treated as a miss and refetched; cache
// corruption must never fail the request.
func (c *CachingClient) UserEvents(ctx context.Context, username string) ([]byte, error) {
	if body, found := c.store.Get(username); found {
		if json.Valid(body) {
			c.logger.Printf("Cache hit: %s (%d bytes)", username, len(body))
			return body, nil
		}
		c.logger.Printf("Cache entry for %s is corrupt - refetching", username)
	} else {
		c.logger.Printf("Cache miss: %s - fetching from API", username)
	}

	body, err := c.client.UserEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	// A write failure only costs us the next invocation's cache hit.
	if err := c.store.Set(username, body); err != nil {
		c.logger.Printf("Cache write failed for %s: %v", username, err)
	}

	return body, nil
}
