// Package client is the portal's workspace-facing REST client: thin caching
// stores for todos, events and ideas over the /api contract. Mutations touch
// the session caches only after the server confirms, so a failed request
// never desyncs what the caller renders.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// API paths consumed by the workspace.
const (
	pathTodos      = "/api/todos"
	pathEvents     = "/api/events"
	pathIdeas      = "/api/ideas"
	pathAdminIdeas = "/api/admin/ideas"
)

// Client talks to the portal API on behalf of one authenticated session.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// New creates a client for the given base URL. The bearer token may be empty
// for unauthenticated probes. A nil httpc falls back to http.DefaultClient;
// no request timeout is imposed beyond the caller's context.
func New(baseURL, token string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   httpc,
	}
}

// SetToken replaces the bearer credential, as after login or refresh.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-success response from the portal. Detail carries the
// server's `detail` field verbatim when present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// detailPayload mirrors the portal error body: detail is either a string or
// a list of field validation errors.
type detailPayload struct {
	Detail json.RawMessage `json:"detail"`
}

type validationError struct {
	Msg string `json:"msg"`
}

// decodeDetail extracts a human-readable message from an error body. A
// string detail is surfaced verbatim; for a validation array the first
// element's msg wins.
func decodeDetail(body []byte) string {
	var payload detailPayload
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var list []validationError
	if err := json.Unmarshal(payload.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}

	return ""
}

// do issues a request and decodes a 2xx JSON body into out (when non-nil).
// Any other status is returned as *APIError; transport failures pass through
// untouched so callers can distinguish the two.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Detail: decodeDetail(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
