package workspace

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/innovatepam/portal/internal/domain/entities"
)

func TestComposeDay_GathersMatchingEntries(t *testing.T) {
	ideas := []*entities.Idea{
		{ID: uuid.New(), Title: "match", CreatedAt: time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Title: "other day", CreatedAt: time.Date(2024, time.March, 16, 8, 0, 0, 0, time.UTC)},
	}
	events := []*entities.Event{eventOn("2024-03-15"), eventOn("2024-03-14")}
	todos := []*entities.Todo{
		scheduledTodo("2024-03-15", true),
		scheduledTodo("2024-03-15", false),
		scheduledTodo("2024-03-20", false),
	}

	view := ComposeDay("2024-03-15", ideas, events, todos)

	assert.False(t, view.Empty)
	assert.Len(t, view.Ideas, 1)
	assert.Equal(t, "match", view.Ideas[0].Title)
	assert.Len(t, view.Events, 1)
	assert.Len(t, view.Todos, 2)
}

func TestComposeDay_EmptySectionsStayNil(t *testing.T) {
	events := []*entities.Event{eventOn("2024-03-15")}

	view := ComposeDay("2024-03-15", nil, events, nil)

	assert.False(t, view.Empty)
	assert.Nil(t, view.Ideas)
	assert.Nil(t, view.Todos)
	assert.Len(t, view.Events, 1)
}

func TestComposeDay_NothingScheduled(t *testing.T) {
	view := ComposeDay("2024-03-15", nil, nil, nil)

	assert.True(t, view.Empty)
	assert.Equal(t, "2024-03-15", view.Key)
}

func TestComposeDay_DoesNotMutateTodoState(t *testing.T) {
	todo := scheduledTodo("2024-03-15", false)

	view := ComposeDay("2024-03-15", nil, nil, []*entities.Todo{todo})

	assert.False(t, view.Todos[0].Done)
	assert.False(t, todo.Done)
}
