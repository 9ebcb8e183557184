package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PromptHandler handles prompt CRUD HTTP requests
type PromptHandler struct {
	promptService services.PromptService
}

// NewPromptHandler creates a new PromptHandler
func NewPromptHandler(promptService services.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// RegisterPromptRoutes registers prompt-related routes
func (h *PromptHandler) RegisterPromptRoutes(g *echo.Group) {
	g.POST("/prompts", h.CreatePrompt)
	g.GET("/prompts", h.ListPrompts)
	g.GET("/prompts/:id", h.GetPrompt)
	g.PUT("/prompts/:id", h.UpdatePrompt)
	g.DELETE("/prompts/:id", h.DeletePrompt)
}

// CreatePrompt publishes a new prompt
func (h *PromptHandler) CreatePrompt(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	req := new(models.CreatePromptRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prompt, err := h.promptService.Create(currentUserID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": prompt})
}

// ListPrompts lists public prompts with optional category/search filters
func (h *PromptHandler) ListPrompts(c echo.Context) error {
	page, limit := paginationParams(c)
	filter := repositories.PromptFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	prompts, total, err := h.promptService.List(filter, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"prompts": prompts},
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetPrompt returns a single prompt and counts the view
func (h *PromptHandler) GetPrompt(c echo.Context) error {
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	currentUserID := getUserIDFromContext(c)

	prompt, err := h.promptService.Get(promptID, currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": prompt})
}

// UpdatePrompt edits the caller's prompt
func (h *PromptHandler) UpdatePrompt(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := new(models.UpdatePromptRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prompt, err := h.promptService.Update(promptID, currentUserID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": prompt})
}

// DeletePrompt removes the caller's prompt and all engagement rows on it
func (h *PromptHandler) DeletePrompt(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.promptService.Delete(promptID, currentUserID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
