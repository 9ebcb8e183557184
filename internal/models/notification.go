package models

import "time"

// Notification types emitted by the social graph and engagement paths
const (
	NotificationTypeUserFollowed     = "USER_FOLLOWED"
	NotificationTypePromptLiked      = "PROMPT_LIKED"
	NotificationTypePromptRated      = "PROMPT_RATED"
	NotificationTypePromptBookmarked = "PROMPT_BOOKMARKED"
	NotificationTypeNewPrompt        = "NEW_PROMPT"
)

// Retention windows for the cleanup sweep
const (
	ReadNotificationRetention   = 30 * 24 * time.Hour
	UnreadNotificationRetention = 90 * 24 * time.Hour
)

// Notification represents a durable per-user notification record
type Notification struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	RecipientID uint       `json:"recipient_id" gorm:"index;not null"`
	SenderID    *uint      `json:"sender_id" gorm:"index"`
	Type        string     `json:"type" gorm:"size:30;index"`
	Title       string     `json:"title" gorm:"size:200"`
	Message     string     `json:"message" gorm:"size:500"`
	EntityType  string     `json:"entity_type" gorm:"size:20"` // prompt, user
	EntityID    uint       `json:"entity_id"`
	IsRead      bool       `json:"is_read" gorm:"default:false;index"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
}
