package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like toggle HTTP requests
type LikeHandler struct {
	likeService services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/prompts/:id/like", h.ToggleLike)
}

// ToggleLike flips the caller's like on a prompt and returns the new state
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	liked, likeCount, err := h.likeService.Toggle(promptID, currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"liked":      liked,
		"like_count": likeCount,
	}})
}
