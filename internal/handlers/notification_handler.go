package handlers

import (
	"net/http"
	"time"

	"github.com/promptdeck/backend/internal/repositories"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
}

// RegisterInternalRoutes registers routes intended for the external scheduler
func (h *NotificationHandler) RegisterInternalRoutes(g *echo.Group) {
	g.POST("/internal/notifications/cleanup", h.Cleanup)
}

// GetNotifications returns paginated notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	page, limit := paginationParams(c)

	filter := repositories.NotificationFilter{
		UnreadOnly: c.QueryParam("unread") == "true",
		Type:       c.QueryParam("type"),
	}

	notifications, total, err := h.notificationService.List(currentUserID, filter, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"notifications": notifications},
		"meta":    paginationMeta(page, limit, total),
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationService.UnreadCount(currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	notifID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkAsRead(currentUserID, notifID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"read": true}})
}

// MarkAllAsRead marks every unread notification of the caller as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	affected, err := h.notificationService.MarkAllAsRead(currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"marked": affected}})
}

// DeleteNotification removes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	notifID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.Delete(currentUserID, notifID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Cleanup runs the retention sweep; the schedule lives outside this service
func (h *NotificationHandler) Cleanup(c echo.Context) error {
	deleted, err := h.notificationService.Cleanup(time.Now())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"deleted": deleted}})
}
