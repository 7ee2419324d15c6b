package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/config"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Static fakes returning canned lists; the workspace handler only reads.

type stubIdeaRepo struct{ ideas []*entities.Idea }

func (r *stubIdeaRepo) Create(context.Context, *entities.Idea) error { return nil }
func (r *stubIdeaRepo) GetByID(context.Context, uuid.UUID) (*entities.Idea, error) {
	return nil, entities.ErrIdeaNotFound
}
func (r *stubIdeaRepo) Update(context.Context, *entities.Idea) error { return nil }
func (r *stubIdeaRepo) List(context.Context, ports.IdeaFilter) ([]*entities.Idea, error) {
	return r.ideas, nil
}
func (r *stubIdeaRepo) GetUserIdeas(context.Context, uuid.UUID, ports.IdeaFilter) ([]*entities.Idea, error) {
	return r.ideas, nil
}
func (r *stubIdeaRepo) CountByStatus(context.Context, *uuid.UUID) (ports.StatusCounts, error) {
	return ports.StatusCounts{}, nil
}
func (r *stubIdeaRepo) DailyCounts(context.Context) ([]ports.DailyCount, error) { return nil, nil }

type stubEventRepo struct{ events []*entities.Event }

func (r *stubEventRepo) Create(context.Context, *entities.Event) error { return nil }
func (r *stubEventRepo) GetByID(context.Context, uuid.UUID) (*entities.Event, error) {
	return nil, entities.ErrEventNotFound
}
func (r *stubEventRepo) GetUserEvents(context.Context, uuid.UUID) ([]*entities.Event, error) {
	return r.events, nil
}

type stubTodoRepo struct{ todos []*entities.Todo }

func (r *stubTodoRepo) Create(context.Context, *entities.Todo) error { return nil }
func (r *stubTodoRepo) GetByID(context.Context, uuid.UUID) (*entities.Todo, error) {
	return nil, entities.ErrTodoNotFound
}
func (r *stubTodoRepo) Update(context.Context, *entities.Todo) error { return nil }
func (r *stubTodoRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (r *stubTodoRepo) GetUserTodos(context.Context, uuid.UUID) ([]*entities.Todo, error) {
	return r.todos, nil
}

type stubUserRepo struct{}

func (r *stubUserRepo) Create(context.Context, *entities.User) error { return nil }
func (r *stubUserRepo) GetByID(context.Context, uuid.UUID) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (r *stubUserRepo) GetByEmail(context.Context, string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (r *stubUserRepo) Update(context.Context, *entities.User) error            { return nil }
func (r *stubUserRepo) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error                 { return nil }
func (r *stubUserRepo) List(context.Context, ports.UserFilter) ([]*entities.User, error) {
	return nil, nil
}
func (r *stubUserRepo) Count(context.Context) (int64, error) { return 0, nil }

type stubNotificationRepo struct{}

func (r *stubNotificationRepo) Create(context.Context, *entities.Notification) error { return nil }
func (r *stubNotificationRepo) GetUserNotifications(context.Context, uuid.UUID, int) ([]*entities.Notification, error) {
	return nil, nil
}
func (r *stubNotificationRepo) MarkAllRead(context.Context, uuid.UUID) error { return nil }

func strPtr(s string) *string { return &s }

func newWorkspaceHandler(t *testing.T, ideas []*entities.Idea, events []*entities.Event, todos []*entities.Todo) *WorkspaceHandler {
	t.Helper()
	log := testLogger()
	notifier := services.NewNotificationService(&stubNotificationRepo{}, log)
	ideaService := services.NewIdeaService(&stubIdeaRepo{ideas: ideas}, notifier, config.UploadsConfig{Dir: t.TempDir()}, log)
	eventService := services.NewEventService(&stubEventRepo{events: events}, log)
	todoService := services.NewTodoService(&stubTodoRepo{todos: todos}, &stubUserRepo{}, notifier, log)
	return NewWorkspaceHandler(ideaService, eventService, todoService, log)
}

func newWorkspaceContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uuid.New().String())
	c.Set("user_role", string(entities.UserRoleSubmitter))
	return c, rec
}

func TestWorkspaceCalendarRendersIndicators(t *testing.T) {
	userID := uuid.New()
	created, err := time.Parse(time.RFC3339, "2024-02-10T09:30:00Z")
	require.NoError(t, err)

	ideas := []*entities.Idea{
		{ID: uuid.New(), UserID: userID, Title: "Idea", Status: entities.IdeaStatusSubmitted, CreatedAt: created},
	}
	events := []*entities.Event{
		{ID: uuid.New(), UserID: userID, Title: "Standup", Date: "2024-02-10", Color: entities.DefaultEventColor},
	}
	todos := []*entities.Todo{
		{ID: uuid.New(), UserID: userID, Title: "Ship it", Date: strPtr("2024-02-10"), Done: false},
	}

	h := newWorkspaceHandler(t, ideas, events, todos)
	c, rec := newWorkspaceContext(http.MethodGet, "/api/workspace/calendar?year=2024&month=1")

	require.NoError(t, h.Calendar(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var grid workspace.MonthGrid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 1, grid.Month)
	assert.Equal(t, "February 2024", grid.Title)
	assert.Equal(t, 29, grid.DayCount)

	var day10 *workspace.DayCell
	for i := range grid.Cells {
		if grid.Cells[i].Day == 10 {
			day10 = &grid.Cells[i]
			break
		}
	}
	require.NotNil(t, day10)
	assert.True(t, day10.Annotation.HasIdea)
	assert.True(t, day10.Annotation.HasEvent)
	assert.True(t, day10.Annotation.HasPendingTask)
	assert.False(t, day10.Annotation.HasDoneTask)
}

func TestWorkspaceCalendarRejectsBadMonth(t *testing.T) {
	h := newWorkspaceHandler(t, nil, nil, nil)
	c, _ := newWorkspaceContext(http.MethodGet, "/api/workspace/calendar?year=2024&month=12")

	err := h.Calendar(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestWorkspaceDayView(t *testing.T) {
	userID := uuid.New()
	events := []*entities.Event{
		{ID: uuid.New(), UserID: userID, Title: "Review", Date: "2024-03-15", Color: entities.DefaultEventColor},
	}

	h := newWorkspaceHandler(t, nil, events, nil)
	c, rec := newWorkspaceContext(http.MethodGet, "/api/workspace/day/2024-03-15")
	c.SetParamNames("date")
	c.SetParamValues("2024-03-15")

	require.NoError(t, h.Day(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var view workspace.DayView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.Equal(t, "2024-03-15", view.Key)
	require.Len(t, view.Events, 1)
	assert.Empty(t, view.Ideas)
	assert.Empty(t, view.Todos)
	assert.False(t, view.Empty)
}

func TestWorkspaceDayViewRejectsBadKey(t *testing.T) {
	h := newWorkspaceHandler(t, nil, nil, nil)
	c, _ := newWorkspaceContext(http.MethodGet, "/api/workspace/day/2024-3-5")
	c.SetParamNames("date")
	c.SetParamValues("2024-3-5")

	err := h.Day(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestEventCapabilitiesEndpoint(t *testing.T) {
	h := NewEventHandler(services.NewEventService(&stubEventRepo{}, testLogger()), testLogger())
	c, rec := newWorkspaceContext(http.MethodGet, "/api/events/capabilities")

	require.NoError(t, h.Capabilities(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var caps workspace.EventCapabilities
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caps))
	assert.False(t, caps.CanUpdate)
	assert.False(t, caps.CanDelete)
}
