package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService services.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService services.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
	g.GET("/users/:id/follow/status", h.GetFollowStatus)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Follow(currentUserID, targetID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(currentUserID, targetID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetFollowStatus returns the two directed existence checks between the caller and the target
func (h *FollowHandler) GetFollowStatus(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	status, err := h.followService.Status(currentUserID, targetID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": status})
}

// GetFollowers lists the followers of a user, annotated for the caller
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, limit := paginationParams(c)
	requesterID := getUserIDFromContext(c)

	entries, total, err := h.followService.ListFollowers(userID, requesterID, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": entries},
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetFollowing lists who a user follows, annotated for the caller
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	page, limit := paginationParams(c)
	requesterID := getUserIDFromContext(c)

	entries, total, err := h.followService.ListFollowing(userID, requesterID, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": entries},
		"meta":    paginationMeta(page, limit, total),
	})
}
