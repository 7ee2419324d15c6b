package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
)

// NotificationHandler handles notification requests
type NotificationHandler struct {
	notificationService *services.NotificationService
	logger              *logger.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications returns the caller's newest notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := getUserIDFromContext(c)

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit parameter")
		}
		limit = parsed
	}

	notifications, err := h.notificationService.ListUserNotifications(c.Request().Context(), userID, limit)
	if err != nil {
		h.logger.Error("List notifications failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve notifications")
	}

	if notifications == nil {
		notifications = []*entities.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkAllRead marks every unread notification for the caller as read.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.notificationService.MarkAllRead(c.Request().Context(), userID); err != nil {
		h.logger.Error("Mark notifications read failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update notifications")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "All notifications marked as read."})
}
