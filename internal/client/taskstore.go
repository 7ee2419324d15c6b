package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

// ListTodos fetches all todos visible to the session's user and replaces the
// cache. Order is server-provided creation order. Overlapping loads are not
// coalesced; the last response to resolve wins the cache.
func (c *Client) ListTodos(ctx context.Context, s *workspace.Session) error {
	var todos []*entities.Todo
	if err := c.do(ctx, http.MethodGet, pathTodos, nil, &todos); err != nil {
		return err
	}

	s.ReplaceTodos(todos)
	return nil
}

// CreateTodo posts a new todo and appends the server's representation to the
// cache on success. An empty title is rejected before any network call; the
// server remains authoritative for everything else.
func (c *Client) CreateTodo(ctx context.Context, s *workspace.Session, req ports.CreateTodoRequest) (*entities.Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, entities.ErrEmptyTitle
	}

	var created entities.Todo
	if err := c.do(ctx, http.MethodPost, pathTodos, req, &created); err != nil {
		return nil, err
	}

	s.AppendTodo(&created)
	return &created, nil
}

// ToggleTodo flips the done flag server-side and swaps the cached item for
// the returned representation. No optimistic update: on failure the cache,
// and therefore the rendered checkbox, is left exactly as it was.
func (c *Client) ToggleTodo(ctx context.Context, s *workspace.Session, id string, done bool) (*entities.Todo, error) {
	req := ports.UpdateTodoRequest{Done: &done}

	var updated entities.Todo
	if err := c.do(ctx, http.MethodPatch, pathTodos+"/"+id, req, &updated); err != nil {
		return nil, err
	}

	s.SwapTodo(&updated)
	return &updated, nil
}

// DeleteTodo removes a todo from the cache only after the server confirms
// with a success status.
func (c *Client) DeleteTodo(ctx context.Context, s *workspace.Session, id string) error {
	if err := c.do(ctx, http.MethodDelete, pathTodos+"/"+id, nil, nil); err != nil {
		return err
	}

	s.RemoveTodo(id)
	return nil
}
