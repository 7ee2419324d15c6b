package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

func newSession() *workspace.Session {
	return workspace.NewSession(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func TestListTodos_ReplacesCacheAndSendsBearer(t *testing.T) {
	todos := []*entities.Todo{
		{ID: uuid.New(), Title: "first"},
		{ID: uuid.New(), Title: "second"},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		json.NewEncoder(w).Encode(todos)
	}))
	defer srv.Close()

	s := newSession()
	s.ReplaceTodos([]*entities.Todo{{ID: uuid.New(), Title: "stale"}})

	c := New(srv.URL, "token-123", srv.Client())
	err := c.ListTodos(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	require.Len(t, s.Todos, 2)
	assert.Equal(t, "first", s.Todos[0].Title)
}

func TestCreateTodo_EmptyTitleBlocksRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	s := newSession()
	c := New(srv.URL, "t", srv.Client())

	_, err := c.CreateTodo(context.Background(), s, ports.CreateTodoRequest{Title: "   "})

	assert.ErrorIs(t, err, entities.ErrEmptyTitle)
	assert.Zero(t, requests)
	assert.Empty(t, s.Todos)
}

func TestCreateTodo_DateRoundTripsUnmodified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ports.CreateTodoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		created := entities.Todo{ID: uuid.New(), Title: req.Title, Date: req.Date}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))
	defer srv.Close()

	s := newSession()
	c := New(srv.URL, "t", srv.Client())

	date := "2024-03-15"
	created, err := c.CreateTodo(context.Background(), s, ports.CreateTodoRequest{Title: "review", Date: &date})

	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", *created.Date)
	require.Len(t, s.Todos, 1)
	assert.Equal(t, "2024-03-15", *s.Todos[0].Date)
}

func TestToggleTodo_SwapsWithServerRepresentation(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/todos/"+id.String(), r.URL.Path)

		// Server is source of truth for derived fields; it may normalize.
		json.NewEncoder(w).Encode(entities.Todo{ID: id, Title: "normalized", Done: true})
	}))
	defer srv.Close()

	s := newSession()
	s.ReplaceTodos([]*entities.Todo{{ID: id, Title: "raw", Done: false}})

	c := New(srv.URL, "t", srv.Client())
	updated, err := c.ToggleTodo(context.Background(), s, id.String(), true)

	require.NoError(t, err)
	assert.True(t, updated.Done)
	assert.Equal(t, "normalized", s.Todos[0].Title)
	assert.True(t, s.Todos[0].Done)
}

func TestToggleTodo_FailureLeavesCacheUntouched(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Todo not found or not yours."})
	}))
	defer srv.Close()

	s := newSession()
	s.ReplaceTodos([]*entities.Todo{{ID: id, Title: "keep", Done: false}})

	c := New(srv.URL, "t", srv.Client())
	_, err := c.ToggleTodo(context.Background(), s, id.String(), true)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Todo not found or not yours.", apiErr.Detail)
	assert.False(t, s.Todos[0].Done)
}

func TestDeleteTodo_RemovesAfterConfirmation(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newSession()
	other := &entities.Todo{ID: uuid.New(), Title: "other"}
	s.ReplaceTodos([]*entities.Todo{{ID: id, Title: "doomed"}, other})

	c := New(srv.URL, "t", srv.Client())
	err := c.DeleteTodo(context.Background(), s, id.String())

	require.NoError(t, err)
	require.Len(t, s.Todos, 1)
	assert.Equal(t, other.ID, s.Todos[0].ID)
}

func TestDeleteTodo_FailureKeepsCache(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newSession()
	s.ReplaceTodos([]*entities.Todo{{ID: id, Title: "survives"}})

	c := New(srv.URL, "t", srv.Client())
	err := c.DeleteTodo(context.Background(), s, id.String())

	require.Error(t, err)
	assert.Len(t, s.Todos, 1)
}

func TestCreateEvent_ValidationGates(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	s := newSession()
	c := New(srv.URL, "t", srv.Client())

	_, err := c.CreateEvent(context.Background(), s, ports.CreateEventRequest{Title: "", Date: "2024-03-15"})
	assert.ErrorIs(t, err, entities.ErrEmptyTitle)

	_, err = c.CreateEvent(context.Background(), s, ports.CreateEventRequest{Title: "standup", Date: "not-a-date"})
	assert.ErrorIs(t, err, entities.ErrInvalidDateKey)

	assert.Zero(t, requests)
}

func TestCreateEvent_DefaultsColorAndAppends(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ports.CreateEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, entities.DefaultEventColor, req.Color)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entities.Event{ID: uuid.New(), Title: req.Title, Date: req.Date, Color: req.Color})
	}))
	defer srv.Close()

	s := newSession()
	c := New(srv.URL, "t", srv.Client())

	created, err := c.CreateEvent(context.Background(), s, ports.CreateEventRequest{Title: "demo day", Date: "2024-03-20"})

	require.NoError(t, err)
	assert.Equal(t, entities.DefaultEventColor, created.Color)
	assert.Len(t, s.Events, 1)
}

func TestListIdeas_PopulatesCalendarSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ideas", r.URL.Path)
		json.NewEncoder(w).Encode([]*entities.Idea{
			{ID: uuid.New(), Title: "idea", CreatedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)},
		})
	}))
	defer srv.Close()

	s := newSession()
	c := New(srv.URL, "t", srv.Client())

	require.NoError(t, c.ListIdeas(context.Background(), s))

	grid := s.Month(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, grid.Cells[grid.LeadingBlanks+14].Annotation.HasIdea)
}

func TestDecodeDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"Todo not found or not yours."}`, "Todo not found or not yours."},
		{"validation array", `{"detail":[{"loc":["body","title"],"msg":"field required","type":"value_error.missing"}]}`, "field required"},
		{"empty array", `{"detail":[]}`, ""},
		{"no detail", `{"message":"nope"}`, ""},
		{"garbage", `not json`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeDetail([]byte(tt.body)))
		})
	}
}

func TestAPIError_GenericMessageWithoutDetail(t *testing.T) {
	err := &APIError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "request failed with status 502", err.Error())
}
