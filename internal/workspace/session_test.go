package workspace

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/innovatepam/portal/internal/domain/entities"
)

func TestNewSession_StartsOnCurrentMonth(t *testing.T) {
	s := NewSession(time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 2024, s.CalYear)
	assert.Equal(t, 11, s.CalMonth)
	assert.Equal(t, "December 2024", s.Title())
}

func TestSessionNext_RollsYearAtDecember(t *testing.T) {
	s := &Session{CalYear: 2024, CalMonth: 11}

	s.Next()

	assert.Equal(t, 2025, s.CalYear)
	assert.Equal(t, 0, s.CalMonth)
	assert.Equal(t, "January 2025", s.Title())
}

func TestSessionPrev_RollsYearAtJanuary(t *testing.T) {
	s := &Session{CalYear: 2024, CalMonth: 0}

	s.Prev()

	assert.Equal(t, 2023, s.CalYear)
	assert.Equal(t, 11, s.CalMonth)
	assert.Equal(t, "December 2023", s.Title())
}

func TestSessionNavigation_RoundTrips(t *testing.T) {
	s := &Session{CalYear: 2024, CalMonth: 5}

	for i := 0; i < 24; i++ {
		s.Next()
	}
	assert.Equal(t, 2026, s.CalYear)
	assert.Equal(t, 5, s.CalMonth)

	for i := 0; i < 24; i++ {
		s.Prev()
	}
	assert.Equal(t, 2024, s.CalYear)
	assert.Equal(t, 5, s.CalMonth)
}

func TestSessionMonth_ReflectsCacheMutations(t *testing.T) {
	s := NewSession(testNow)
	s.CalYear, s.CalMonth = 2024, 5

	todo := scheduledTodo("2024-06-10", false)
	s.AppendTodo(todo)

	grid := s.Month(testNow)
	assert.True(t, grid.Cells[grid.LeadingBlanks+9].Annotation.HasPendingTask)
	assert.False(t, grid.Cells[grid.LeadingBlanks+9].Annotation.HasDoneTask)

	// Server confirms the toggle; the swapped copy drives the next render.
	toggled := *todo
	toggled.Done = true
	s.SwapTodo(&toggled)

	grid = s.Month(testNow)
	assert.True(t, grid.Cells[grid.LeadingBlanks+9].Annotation.HasDoneTask)
	assert.False(t, grid.Cells[grid.LeadingBlanks+9].Annotation.HasPendingTask)

	s.RemoveTodo(todo.ID.String())

	grid = s.Month(testNow)
	assert.True(t, grid.Cells[grid.LeadingBlanks+9].Annotation.Empty())
}

func TestSessionRemoveTodo_LeavesOthersUntouched(t *testing.T) {
	s := NewSession(testNow)
	first := scheduledTodo("2024-06-08", false)
	second := scheduledTodo("2024-06-21", false)
	s.ReplaceTodos([]*entities.Todo{first, second})

	s.RemoveTodo(first.ID.String())

	assert.Len(t, s.Todos, 1)
	assert.Equal(t, second.ID, s.Todos[0].ID)
}

func TestSessionSwapTodo_UnknownIDIsNoop(t *testing.T) {
	s := NewSession(testNow)
	s.AppendTodo(scheduledTodo("2024-06-08", false))

	s.SwapTodo(&entities.Todo{ID: uuid.New(), Done: true})

	assert.False(t, s.Todos[0].Done)
}

func TestSessionDay_UsesCaches(t *testing.T) {
	s := NewSession(testNow)
	s.AppendEvent(eventOn("2024-06-10"))
	s.AppendTodo(scheduledTodo("2024-06-10", false))

	view := s.Day("2024-06-10")

	assert.False(t, view.Empty)
	assert.Len(t, view.Events, 1)
	assert.Len(t, view.Todos, 1)
	assert.Nil(t, view.Ideas)
}
