package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/innovatepam/portal/internal/application/services"
	"github.com/innovatepam/portal/internal/domain/entities"
	"github.com/innovatepam/portal/internal/infrastructure/logger"
	"github.com/innovatepam/portal/internal/ports"
)

// IdeaHandler handles idea submission and review requests
type IdeaHandler struct {
	ideaService *services.IdeaService
	logger      *logger.Logger
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService *services.IdeaService, logger *logger.Logger) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
		logger:      logger,
	}
}

// SubmitIdea handles idea submission. The request is multipart form data so
// an attachment can ride along with the text fields.
// @Summary Submit a new idea
// @Tags ideas
// @Accept mpfd
// @Produce json
// @Success 201 {object} entities.Idea
// @Failure 400 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /ideas [post]
func (h *IdeaHandler) SubmitIdea(c echo.Context) error {
	req := ports.SubmitIdeaRequest{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    strings.TrimSpace(c.FormValue("category")),
	}
	if v := c.FormValue("tags"); v != "" {
		req.Tags = &v
	}
	if v := c.FormValue("problem_statement"); v != "" {
		req.ProblemStatement = &v
	}
	if v := c.FormValue("solution"); v != "" {
		req.Solution = &v
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		src, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Could not read attachment")
		}
		defer src.Close()
		req.Attachment = &ports.Attachment{
			Filename: fileHeader.Filename,
			Content:  src,
		}
	}

	userID := getUserIDFromContext(c)
	idea, err := h.ideaService.SubmitIdea(c.Request().Context(), userID, req)
	if err != nil {
		h.logger.Error("Idea submission failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, idea)
}

// ListMyIdeas returns the caller's own submissions.
// @Summary List my ideas
// @Tags ideas
// @Produce json
// @Success 200 {array} entities.Idea
// @Security BearerAuth
// @Router /ideas [get]
func (h *IdeaHandler) ListMyIdeas(c echo.Context) error {
	userID := getUserIDFromContext(c)

	ideas, err := h.ideaService.ListUserIdeas(c.Request().Context(), userID, ideaFilterFromQuery(c))
	if err != nil {
		h.logger.Error("List ideas failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve ideas")
	}

	if ideas == nil {
		ideas = []*entities.Idea{}
	}
	return c.JSON(http.StatusOK, ideas)
}

// GetIdea returns a single idea visible to the caller.
func (h *IdeaHandler) GetIdea(c echo.Context) error {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	idea, err := h.ideaService.GetIdea(c.Request().Context(), ideaID, getUserIDFromContext(c), getUserRoleFromContext(c))
	if err != nil {
		return notFoundOr(err, entities.ErrIdeaNotFound, "Idea not found")
	}

	return c.JSON(http.StatusOK, idea)
}

// ListAllIdeas returns every submission; the route is admin-gated.
// @Summary List all ideas (admin)
// @Tags admin
// @Produce json
// @Success 200 {array} entities.Idea
// @Security BearerAuth
// @Router /admin/ideas [get]
func (h *IdeaHandler) ListAllIdeas(c echo.Context) error {
	ideas, err := h.ideaService.ListAllIdeas(c.Request().Context(), ideaFilterFromQuery(c))
	if err != nil {
		h.logger.Error("List all ideas failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve ideas")
	}

	if ideas == nil {
		ideas = []*entities.Idea{}
	}
	return c.JSON(http.StatusOK, ideas)
}

// EvaluateIdea records an admin verdict on an idea.
// @Summary Evaluate an idea (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ports.EvaluateIdeaRequest true "Verdict"
// @Success 200 {object} entities.Idea
// @Failure 404 {object} ports.DetailResponse
// @Security BearerAuth
// @Router /admin/ideas/{id}/evaluate [put]
func (h *IdeaHandler) EvaluateIdea(c echo.Context) error {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	var req ports.EvaluateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	reviewerID := getUserIDFromContext(c)
	idea, err := h.ideaService.EvaluateIdea(c.Request().Context(), ideaID, reviewerID, req)
	if err != nil {
		switch {
		case err == entities.ErrCommentRequired, err == entities.ErrInvalidStatus:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return notFoundOr(err, entities.ErrIdeaNotFound, "Idea not found")
		}
	}

	return c.JSON(http.StatusOK, idea)
}

func ideaFilterFromQuery(c echo.Context) ports.IdeaFilter {
	filter := ports.IdeaFilter{}

	if status := c.QueryParam("status"); status != "" {
		ideaStatus := entities.IdeaStatus(status)
		if ideaStatus.IsValid() {
			filter.Status = &ideaStatus
		}
	}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
			filter.Offset = offset
		}
	}

	return filter
}
