package handlers

import (
	"net/http"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles user directory HTTP requests
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/users", h.RegisterUser)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:id", h.GetUser)
}

// RegisterUser creates a new user record
func (h *UserHandler) RegisterUser(c echo.Context) error {
	req := new(models.CreateUserRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": user})
}

// GetUser returns a user profile with its counters
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// SearchUsers searches users by nickname or email
func (h *UserHandler) SearchUsers(c echo.Context) error {
	page, limit := paginationParams(c)

	users, total, err := h.userService.Search(c.QueryParam("q"), page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"users": users},
		"meta":    paginationMeta(page, limit, total),
	})
}
