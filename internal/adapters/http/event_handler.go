package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
	"github.com/innovatepam/portal/internal/workspace"
)

// EventHandler handles calendar event requests. Events are append-only; the
// route table carries no update or delete, and the capabilities endpoint says
// so explicitly instead of leaving clients to probe.
type EventHandler struct {
	eventService *services.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents returns the caller's events.
// @Summary List my events
// @Tags events
// @Produce json
// @Success 200 {array} entities.Event
// @Security BearerAuth
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID := getUserIDFromContext(c)

	events, err := h.eventService.ListUserEvents(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("List events failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve events")
	}

	if events == nil {
		events = []*entities.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent stores a new calendar event.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body ports.CreateEventRequest true "Event data"
// @Success 201 {object} entities.Event
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req ports.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := getUserIDFromContext(c)
	event, err := h.eventService.CreateEvent(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Create event failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, event)
}

// Capabilities reports which event mutations the contract supports.
// @Summary Event store capabilities
// @Tags events
// @Produce json
// @Success 200 {object} workspace.EventCapabilities
// @Router /events/capabilities [get]
func (h *EventHandler) Capabilities(c echo.Context) error {
	return c.JSON(http.StatusOK, workspace.EventStoreCapabilities())
}
