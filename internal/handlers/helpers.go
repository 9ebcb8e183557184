package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the resolved caller identity set by the
// identity middleware, or 0 when the request is anonymous
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}

// requireUserID is getUserIDFromContext for routes that refuse anonymous callers
func requireUserID(c echo.Context) (uint, error) {
	id := getUserIDFromContext(c)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return id, nil
}

// paginationParams reads page/limit query parameters with the usual clamping
func paginationParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	return page, limit
}

// paginationMeta builds the standard pagination envelope
func paginationMeta(page, limit int, total int64) echo.Map {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      total,
		"itemsPerPage":    limit,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}

// parseIDParam reads a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// httpError translates service sentinels into HTTP failures
func httpError(err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPromptNotFound),
		errors.Is(err, services.ErrRatingNotFound),
		errors.Is(err, services.ErrBookmarkNotFound),
		errors.Is(err, services.ErrFolderNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrRatingAlreadyExists),
		errors.Is(err, services.ErrAlreadyFollowing),
		errors.Is(err, services.ErrNotFollowing),
		errors.Is(err, services.ErrFolderNameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrNicknameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, services.ErrSelfRating),
		errors.Is(err, services.ErrSelfFollow),
		errors.Is(err, services.ErrSelfBookmark),
		errors.Is(err, services.ErrRatingAccessDenied),
		errors.Is(err, services.ErrPromptAccessDenied),
		errors.Is(err, services.ErrNotificationAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrInvalidScore),
		errors.Is(err, services.ErrCommentTooLong),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrFolderLimitReached):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
