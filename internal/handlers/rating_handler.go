package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RatingHandler handles rating HTTP requests
type RatingHandler struct {
	ratingService services.RatingService
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRatingRoutes registers rating-related routes
func (h *RatingHandler) RegisterRatingRoutes(g *echo.Group) {
	g.POST("/prompts/:id/ratings", h.CreateRating)
	g.PUT("/prompts/:id/ratings", h.UpdateRating)
	g.DELETE("/prompts/:id/ratings", h.DeleteRating)
	g.GET("/prompts/:id/ratings/stats", h.GetRatingStats)
}

// CreateRating rates a prompt
func (h *RatingHandler) CreateRating(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := new(models.CreateRatingRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.ratingService.Create(promptID, currentUserID, req.Score, req.Comment)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{
		"id":             result.Rating.ID,
		"score":          result.Rating.Score,
		"comment":        result.Rating.Comment,
		"average_rating": result.AverageRating,
		"rating_count":   result.RatingCount,
	}})
}

// UpdateRating changes the caller's existing rating
func (h *RatingHandler) UpdateRating(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := new(models.UpdateRatingRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.ratingService.Update(promptID, currentUserID, req.Score, req.Comment)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"id":             result.Rating.ID,
		"score":          result.Rating.Score,
		"comment":        result.Rating.Comment,
		"average_rating": result.AverageRating,
		"rating_count":   result.RatingCount,
	}})
}

// DeleteRating removes the caller's rating and returns the updated aggregate
func (h *RatingHandler) DeleteRating(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	average, count, err := h.ratingService.Delete(promptID, currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"average_rating": average,
		"rating_count":   count,
	}})
}

// GetRatingStats returns the aggregate, the caller's own score, and the
// score distribution for a prompt
func (h *RatingHandler) GetRatingStats(c echo.Context) error {
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	currentUserID := getUserIDFromContext(c)

	stats, err := h.ratingService.Stats(promptID, currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": stats})
}
