package models

import "time"

// Like represents a like on a prompt; existence is the state, there is no flag
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PromptID  uint      `json:"prompt_id" gorm:"index;uniqueIndex:idx_prompt_user_like;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_prompt_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
