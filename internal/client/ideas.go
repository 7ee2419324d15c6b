package client

import (
	"context"
	"net/http"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/workspace"
)

// ListIdeas fetches the user's own ideas and replaces the session cache. The
// calendar consumes only the created_at date of each.
func (c *Client) ListIdeas(ctx context.Context, s *workspace.Session) error {
	return c.listIdeas(ctx, s, pathIdeas)
}

// ListAllIdeas fetches every idea across users, for admin sessions. Any idea
// by any author annotates its submission date in the cached view.
func (c *Client) ListAllIdeas(ctx context.Context, s *workspace.Session) error {
	return c.listIdeas(ctx, s, pathAdminIdeas)
}

func (c *Client) listIdeas(ctx context.Context, s *workspace.Session, path string) error {
	var ideas []*entities.Idea
	if err := c.do(ctx, http.MethodGet, path, nil, &ideas); err != nil {
		return err
	}

	s.ReplaceIdeas(ideas)
	return nil
}
