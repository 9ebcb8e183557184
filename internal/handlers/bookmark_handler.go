package handlers

import (
	"net/http"
	"strconv"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// BookmarkHandler handles bookmark and bookmark folder HTTP requests
type BookmarkHandler struct {
	bookmarkService services.BookmarkService
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkService services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

// RegisterBookmarkRoutes registers bookmark-related routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/prompts/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.ListBookmarks)
	g.PUT("/bookmarks/:id/folder", h.MoveBookmark)
	g.POST("/bookmark-folders", h.CreateFolder)
	g.GET("/bookmark-folders", h.ListFolders)
	g.PUT("/bookmark-folders/:id", h.UpdateFolder)
	g.DELETE("/bookmark-folders/:id", h.DeleteFolder)
}

// ToggleBookmark flips the caller's bookmark on a prompt
func (h *BookmarkHandler) ToggleBookmark(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	promptID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	bookmarked, bookmarkCount, err := h.bookmarkService.Toggle(promptID, currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"bookmarked":     bookmarked,
		"bookmark_count": bookmarkCount,
	}})
}

// ListBookmarks returns the caller's bookmarked prompts, optionally scoped to a folder
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	page, limit := paginationParams(c)

	var folderID *uint
	if raw := c.QueryParam("folder_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid folder_id")
		}
		id := uint(parsed)
		folderID = &id
	}

	bookmarks, total, err := h.bookmarkService.List(currentUserID, folderID, page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"bookmarks": bookmarks},
		"meta":    paginationMeta(page, limit, total),
	})
}

// MoveBookmark refiles a bookmark; a null folder_id means uncategorized
func (h *BookmarkHandler) MoveBookmark(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	bookmarkID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := new(models.MoveBookmarkRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.bookmarkService.Move(bookmarkID, currentUserID, req.FolderID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"folder_id": req.FolderID}})
}

// CreateFolder creates a bookmark folder for the caller
func (h *BookmarkHandler) CreateFolder(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	req := new(models.CreateBookmarkFolderRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	folder, err := h.bookmarkService.CreateFolder(currentUserID, req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": folder})
}

// ListFolders returns all of the caller's folders
func (h *BookmarkHandler) ListFolders(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}

	folders, err := h.bookmarkService.ListFolders(currentUserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"folders": folders}})
}

// UpdateFolder renames a folder
func (h *BookmarkHandler) UpdateFolder(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	folderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	req := new(models.UpdateBookmarkFolderRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	folder, err := h.bookmarkService.UpdateFolder(folderID, currentUserID, req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": folder})
}

// DeleteFolder removes a folder, re-parenting its bookmarks to uncategorized
func (h *BookmarkHandler) DeleteFolder(c echo.Context) error {
	currentUserID, err := requireUserID(c)
	if err != nil {
		return err
	}
	folderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookmarkService.DeleteFolder(folderID, currentUserID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
