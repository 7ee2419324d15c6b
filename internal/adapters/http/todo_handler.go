package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// TodoHandler handles todo requests
type TodoHandler struct {
	todoService *services.TodoService
	logger      *logger.Logger
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *services.TodoService, logger *logger.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos returns the caller's todos.
// @Summary List my todos
// @Tags todos
// @Produce json
// @Success 200 {array} entities.Todo
// @Security BearerAuth
// @Router /todos [get]
func (h *TodoHandler) ListTodos(c echo.Context) error {
	userID := getUserIDFromContext(c)

	todos, err := h.todoService.ListUserTodos(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("List todos failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve todos")
	}

	if todos == nil {
		todos = []*entities.Todo{}
	}
	return c.JSON(http.StatusOK, todos)
}

// CreateTodo creates a todo for the caller, or for another user when called
// by an admin with a target user id.
// @Summary Create a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param request body ports.CreateTodoRequest true "Todo data"
// @Success 201 {object} entities.Todo
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var req ports.CreateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := getUserIDFromContext(c)
	todo, err := h.todoService.CreateTodo(c.Request().Context(), userID, getUserRoleFromContext(c), req)
	if err != nil {
		switch err {
		case entities.ErrForbidden:
			return echo.NewHTTPError(http.StatusForbidden, "Only admins can assign todos to other users")
		case entities.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Assignee not found")
		default:
			h.logger.Error("Create todo failed", "error", err, "user_id", userID)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, todo)
}

// UpdateTodo applies a partial update to the caller's todo.
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param request body ports.UpdateTodoRequest true "Fields to update"
// @Success 200 {object} entities.Todo
// @Failure 404 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /todos/{id} [patch]
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid todo ID")
	}

	var req ports.UpdateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), todoID, getUserIDFromContext(c), req)
	if err != nil {
		return notFoundOr(err, entities.ErrTodoNotFound, "Todo not found or not yours.")
	}

	return c.JSON(http.StatusOK, todo)
}

// DeleteTodo removes the caller's todo.
// @Summary Delete a todo
// @Tags todos
// @Param id path string true "Todo ID"
// @Success 204 "No Content"
// @Failure 404 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid todo ID")
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), todoID, getUserIDFromContext(c)); err != nil {
		return notFoundOr(err, entities.ErrTodoNotFound, "Todo not found or not yours.")
	}

	return c.NoContent(http.StatusNoContent)
}
