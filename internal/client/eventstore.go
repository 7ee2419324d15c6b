package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

// ListEvents fetches all calendar events for the session's user and replaces
// the cache.
func (c *Client) ListEvents(ctx context.Context, s *workspace.Session) error {
	var events []*entities.Event
	if err := c.do(ctx, http.MethodGet, pathEvents, nil, &events); err != nil {
		return err
	}

	s.ReplaceEvents(events)
	return nil
}

// CreateEvent posts a new event and appends it to the cache on success.
// Title and date are required client-side; the request is blocked before any
// network call when either is missing.
func (c *Client) CreateEvent(ctx context.Context, s *workspace.Session, req ports.CreateEventRequest) (*entities.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, entities.ErrEmptyTitle
	}
	if !entities.ValidDateKey(req.Date) {
		return nil, entities.ErrInvalidDateKey
	}
	if req.Color == "" {
		req.Color = entities.DefaultEventColor
	}

	var created entities.Event
	if err := c.do(ctx, http.MethodPost, pathEvents, req, &created); err != nil {
		return nil, err
	}

	s.AppendEvent(&created)
	return &created, nil
}

// EventCapabilities reports which event mutations the contract supports.
// The wire contract exposes neither update nor delete.
func (c *Client) EventCapabilities() workspace.EventCapabilities {
	return workspace.EventStoreCapabilities()
}
