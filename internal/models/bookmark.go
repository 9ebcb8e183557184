package models

import "time"

// MaxBookmarkFolders caps how many folders a single user may own
const MaxBookmarkFolders = 20

// Bookmark represents a saved prompt, optionally filed into a folder
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PromptID  uint      `json:"prompt_id" gorm:"index;uniqueIndex:idx_prompt_user_bookmark;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_prompt_user_bookmark;not null"`
	FolderID  *uint     `json:"folder_id" gorm:"index"` // nil means uncategorized
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkFolder is a user-owned soft categorization of bookmarks
type BookmarkFolder struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_folder_name;not null"`
	Name          string    `json:"name" gorm:"size:100;uniqueIndex:idx_user_folder_name;not null"`
	Description   string    `json:"description" gorm:"size:500"`
	BookmarkCount int       `json:"bookmark_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateBookmarkFolderRequest defines the request body for creating a folder
type CreateBookmarkFolderRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// UpdateBookmarkFolderRequest defines the request body for renaming a folder
type UpdateBookmarkFolderRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// MoveBookmarkRequest defines the request body for refiling a bookmark
type MoveBookmarkRequest struct {
	FolderID *uint `json:"folder_id"` // nil moves the bookmark to uncategorized
}
