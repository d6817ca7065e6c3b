package service

import (
	"context"
	"encoding/json"

	"github.com/vilaca/github-activity/internal/api"
	"github.com/vilaca/github-activity/internal/domain"
)

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// ActivityService handles business logic for the activity pipeline:
// fetch (through the caching client), parse, filter, truncate.
// Follows Single Responsibility Principle - no transport or rendering here.
type ActivityService struct {
	client api.Client
	logger Logger
}

// NewActivityService creates a new activity service.
func NewActivityService(client api.Client, logger Logger) *ActivityService {
	return &ActivityService{
		client: client,
		logger: logger,
	}
}

// RecentActivity returns up to limit events for username, preserving the
// server-provided most-recent-first order. When eventType is non-empty,
// only events of that type count toward the limit; filtering happens
// before truncation so the caller still gets up to limit matching events.
func (s *ActivityService) RecentActivity(ctx context.Context, username string, limit int, eventType string) ([]domain.Event, error) {
	body, err := s.client.UserEvents(ctx, username)
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, &api.ParseError{Err: err}
	}

	if len(events) == 0 {
		s.logger.Printf("No activity found for user %q", username)
	}

	selected := make([]domain.Event, 0, limit)
	for _, e := range events {
		if eventType != "" && e.Type != eventType {
			continue
		}
		selected = append(selected, e)
		if len(selected) == limit {
			break
		}
	}

	return selected, nil
}
