package models

import "time"

// Rating represents a user's score (and optional comment) on a prompt
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PromptID  uint      `json:"prompt_id" gorm:"index;uniqueIndex:idx_prompt_user_rating;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_prompt_user_rating;not null"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   string    `json:"comment" gorm:"size:1000"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRatingRequest defines the request body for rating a prompt
type CreateRatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// UpdateRatingRequest defines the request body for changing an existing rating
type UpdateRatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// RatingStats aggregates all ratings of a prompt for the stats endpoint
type RatingStats struct {
	AverageRating float64     `json:"average_rating"`
	RatingCount   int         `json:"rating_count"`
	UserRating    int         `json:"user_rating,omitempty"` // caller's own score, 0 when none
	Distribution  map[int]int `json:"distribution"`          // score -> count, all five buckets present
}
