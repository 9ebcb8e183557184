package models

import "time"

// Prompt categories accepted by the API
var PromptCategories = []string{"general", "coding", "writing", "marketing", "education", "productivity", "fun"}

// IsValidCategory reports whether c is one of the accepted prompt categories
func IsValidCategory(c string) bool {
	for _, cat := range PromptCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// Prompt represents a shared prompt artifact with its denormalized counters
type Prompt struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	AuthorID      uint      `json:"author_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"size:200;not null"`
	Description   string    `json:"description" gorm:"size:1000"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	Category      string    `json:"category" gorm:"size:30;index"`
	Tags          []string  `json:"tags" gorm:"serializer:json"`
	LikeCount     int       `json:"like_count" gorm:"default:0"`
	ViewCount     int       `json:"view_count" gorm:"default:0"`
	BookmarkCount int       `json:"bookmark_count" gorm:"default:0"`
	AverageRating float64   `json:"average_rating" gorm:"default:0"`
	RatingCount   int       `json:"rating_count" gorm:"default:0"`
	IsPublic      bool      `json:"is_public" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreatePromptRequest defines the request body for publishing a new prompt
type CreatePromptRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Content     string   `json:"content" validate:"required,min=1"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}

// UpdatePromptRequest defines the request body for updating an existing prompt
type UpdatePromptRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Content     string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}

// PromptSummary is a prompt row enriched with author info and caller flags
type PromptSummary struct {
	Prompt
	Author       UserCompact `json:"author"`
	IsLiked      bool        `json:"is_liked"`
	IsBookmarked bool        `json:"is_bookmarked"`
	UserRating   int         `json:"user_rating,omitempty"` // caller's own score, 0 when none
}
