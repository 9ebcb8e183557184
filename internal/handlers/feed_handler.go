package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed HTTP requests
type FeedHandler struct {
	feedService services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/users/me/feed", h.GetFeed)
}

// GetFeed returns prompts from authors the caller follows, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	page, limit := paginationParams(c)

	prompts, total, err := h.feedService.GetFeed(currentUserID, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"prompts": prompts},
		"meta":    paginationMeta(page, limit, total),
	})
}
