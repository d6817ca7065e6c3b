package api

import "context"

// Client defines the interface for user-activity API clients.
// Allows dependency inversion - consumers depend on this interface, not
// concrete implementations, and the caching layer decorates it.
type Client interface {
	// UserEvents returns the raw JSON body of the public events feed
	// for a user, most-recent-first as served by the API.
	UserEvents(ctx context.Context, username string) ([]byte, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL string
}

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}
