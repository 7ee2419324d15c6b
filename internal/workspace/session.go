package workspace

import (
	"time"

	"github.com/innovatepam/portal/internal/domain/entities"
)

// Session holds one user's workspace state: the cached todo, event and idea
// lists plus the currently visible calendar month. It replaces the ambient
// module-level caches of the old portal client; callers own the session and
// pass it explicitly, derivation stays in the pure render functions.
type Session struct {
	Todos  []*entities.Todo
	Events []*entities.Event
	Ideas  []*entities.Idea

	// CalMonth is 0-indexed (January = 0); display names are 1-indexed.
	CalYear  int
	CalMonth int
}

// NewSession starts a session on the month containing now.
func NewSession(now time.Time) *Session {
	return &Session{
		CalYear:  now.Year(),
		CalMonth: int(now.Month()) - 1,
	}
}

// Prev navigates one month back, rolling the year at January.
func (s *Session) Prev() {
	s.CalMonth--
	if s.CalMonth < 0 {
		s.CalMonth = 11
		s.CalYear--
	}
}

// Next navigates one month forward, rolling the year at December.
func (s *Session) Next() {
	s.CalMonth++
	if s.CalMonth > 11 {
		s.CalMonth = 0
		s.CalYear++
	}
}

// Title renders the visible month, e.g. "January 2025".
func (s *Session) Title() string {
	return MonthTitle(s.CalYear, s.CalMonth)
}

// Month derives the grid for the visible month from the current caches.
func (s *Session) Month(now time.Time) MonthGrid {
	return RenderMonth(s.CalYear, s.CalMonth, s.Events, IdeaDateSet(s.Ideas), s.Todos, now)
}

// Day composes the merged view for one date key from the current caches.
func (s *Session) Day(key string) DayView {
	return ComposeDay(key, s.Ideas, s.Events, s.Todos)
}

// ReplaceTodos swaps the todo cache wholesale, as after a list fetch.
func (s *Session) ReplaceTodos(todos []*entities.Todo) {
	s.Todos = todos
}

// ReplaceEvents swaps the event cache wholesale.
func (s *Session) ReplaceEvents(events []*entities.Event) {
	s.Events = events
}

// ReplaceIdeas swaps the idea cache wholesale.
func (s *Session) ReplaceIdeas(ideas []*entities.Idea) {
	s.Ideas = ideas
}

// AppendTodo adds a confirmed todo to the cache, preserving creation order.
func (s *Session) AppendTodo(todo *entities.Todo) {
	s.Todos = append(s.Todos, todo)
}

// AppendEvent adds a confirmed event to the cache.
func (s *Session) AppendEvent(event *entities.Event) {
	s.Events = append(s.Events, event)
}

// SwapTodo replaces the cached todo with the server's returned
// representation. The server is the source of truth for derived fields.
func (s *Session) SwapTodo(updated *entities.Todo) {
	for i, td := range s.Todos {
		if td.ID == updated.ID {
			s.Todos[i] = updated
			return
		}
	}
}

// RemoveTodo drops a todo from the cache after the server confirms deletion.
func (s *Session) RemoveTodo(id string) {
	for i, td := range s.Todos {
		if td.ID.String() == id {
			s.Todos = append(s.Todos[:i], s.Todos[i+1:]...)
			return
		}
	}
}
