package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

// WorkspaceHandler serves the combined calendar and day views, rendered
// server-side from the caller's ideas, events and todos. Admins see every
// idea on the calendar; submitters see their own.
type WorkspaceHandler struct {
	ideaService  *services.IdeaService
	eventService *services.EventService
	todoService  *services.TodoService
	logger       *logger.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(ideaService *services.IdeaService, eventService *services.EventService, todoService *services.TodoService, logger *logger.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		ideaService:  ideaService,
		eventService: eventService,
		todoService:  todoService,
		logger:       logger,
	}
}

// Calendar renders the month grid for ?year= and ?month= (0-indexed,
// January = 0). Both default to the current month.
// @Summary Month calendar view
// @Tags workspace
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month, 0-indexed"
// @Success 200 {object} workspace.MonthGrid
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /workspace/calendar [get]
func (h *WorkspaceHandler) Calendar(c echo.Context) error {
	now := time.Now()
	year := now.Year()
	month0 := int(now.Month()) - 1

	if yearStr := c.QueryParam("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid year parameter")
		}
		year = parsed
	}
	if monthStr := c.QueryParam("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 0 || parsed > 11 {
			return echo.NewHTTPError(http.StatusBadRequest, "Month must be between 0 and 11")
		}
		month0 = parsed
	}

	ideas, events, todos, err := h.loadSources(c)
	if err != nil {
		return err
	}

	grid := workspace.RenderMonth(year, month0, events, workspace.IdeaDateSet(ideas), todos, now)
	return c.JSON(http.StatusOK, grid)
}

// Day renders the merged view for one date key.
// @Summary Day view
// @Tags workspace
// @Produce json
// @Param date path string true "Date key, YYYY-MM-DD"
// @Success 200 {object} workspace.DayView
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /workspace/day/{date} [get]
func (h *WorkspaceHandler) Day(c echo.Context) error {
	key := c.Param("date")
	if !entities.ValidDateKey(key) {
		return echo.NewHTTPError(http.StatusBadRequest, entities.ErrInvalidDateKey.Error())
	}

	ideas, events, todos, err := h.loadSources(c)
	if err != nil {
		return err
	}

	view := workspace.ComposeDay(key, ideas, events, todos)
	return c.JSON(http.StatusOK, view)
}

func (h *WorkspaceHandler) loadSources(c echo.Context) ([]*entities.Idea, []*entities.Event, []*entities.Todo, error) {
	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	var (
		ideas []*entities.Idea
		err   error
	)
	if getUserRoleFromContext(c) == entities.UserRoleAdmin {
		ideas, err = h.ideaService.ListAllIdeas(ctx, ports.IdeaFilter{})
	} else {
		ideas, err = h.ideaService.ListUserIdeas(ctx, userID, ports.IdeaFilter{})
	}
	if err != nil {
		h.logger.Error("Workspace idea load failed", "error", err, "user_id", userID)
		return nil, nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load workspace data")
	}

	events, err := h.eventService.ListUserEvents(ctx, userID)
	if err != nil {
		h.logger.Error("Workspace event load failed", "error", err, "user_id", userID)
		return nil, nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load workspace data")
	}

	todos, err := h.todoService.ListUserTodos(ctx, userID)
	if err != nil {
		h.logger.Error("Workspace todo load failed", "error", err, "user_id", userID)
		return nil, nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load workspace data")
	}

	return ideas, events, todos, nil
}
