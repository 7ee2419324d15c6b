package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// UserHandler handles profile and admin user listing requests
type UserHandler struct {
	userService *services.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetCurrentUser returns the caller's profile.
// @Summary My profile
// @Tags users
// @Produce json
// @Success 200 {object} entities.User
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID := getUserIDFromContext(c)

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return notFoundOr(err, entities.ErrUserNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, user)
}

// ChangePassword updates the caller's credential.
// @Summary Change my password
// @Tags users
// @Accept json
// @Produce json
// @Param request body ports.PasswordChangeRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req ports.PasswordChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := getUserIDFromContext(c)
	if err := h.userService.ChangePassword(c.Request().Context(), userID, req); err != nil {
		switch err {
		case entities.ErrPasswordIncorrect:
			return echo.NewHTTPError(http.StatusBadRequest, "Current password is incorrect.")
		case entities.ErrPasswordUnchanged:
			return echo.NewHTTPError(http.StatusBadRequest, "New password must differ from the current password.")
		default:
			h.logger.Error("Password change failed", "error", err, "user_id", userID)
			return notFoundOr(err, entities.ErrUserNotFound, "User not found")
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully."})
}

// ListUsers returns a page of accounts; the route is admin-gated.
// @Summary List accounts (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} PaginatedResponse[entities.User]
// @Security BearerAuth
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := ports.UserFilter{}

	if role := c.QueryParam("role"); role != "" {
		userRole := entities.UserRole(role)
		if !userRole.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid role parameter")
		}
		filter.Role = &userRole
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		filter.Limit = limit
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid offset parameter")
		}
		filter.Offset = offset
	}

	users, total, err := h.userService.ListUsers(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List users failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve users")
	}

	if users == nil {
		users = []*entities.User{}
	}

	return c.JSON(http.StatusOK, PaginatedResponse[*entities.User]{
		Data:   users,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// PaginatedResponse wraps a page of items with the collection total.
type PaginatedResponse[T any] struct {
	Data   []T   `json:"data"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}
