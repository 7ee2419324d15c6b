package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
)

// StatsHandler handles profile and admin analytics requests
type StatsHandler struct {
	statsService *services.StatsService
	logger       *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// UserStats returns the caller's submission counts.
// @Summary My submission stats
// @Tags stats
// @Produce json
// @Success 200 {object} ports.UserStats
// @Security BearerAuth
// @Router /users/me/stats [get]
func (h *StatsHandler) UserStats(c echo.Context) error {
	userID := getUserIDFromContext(c)

	stats, err := h.statsService.UserStats(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("User stats failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute stats")
	}

	return c.JSON(http.StatusOK, stats)
}

// AdminStats returns portal-wide counts; the route is admin-gated.
// @Summary Portal-wide stats (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} ports.AdminStats
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *StatsHandler) AdminStats(c echo.Context) error {
	stats, err := h.statsService.AdminStats(c.Request().Context())
	if err != nil {
		h.logger.Error("Admin stats failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute stats")
	}

	return c.JSON(http.StatusOK, stats)
}
