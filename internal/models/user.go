package models

import "time"

// User represents a registered member of the platform
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255"` // Ensure email is unique across all users
	Nickname       string    `json:"nickname" gorm:"uniqueIndex;size:50"`
	Bio            string    `json:"bio" gorm:"size:500"`
	FollowerCount  int       `json:"follower_count" gorm:"default:0"`
	FollowingCount int       `json:"following_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserCompact is the trimmed-down user payload embedded in lists and notifications
type UserCompact struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Nickname: u.Nickname}
}

// CreateUserRequest defines the request body for registering a new user
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"required,min=2,max=50"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// FollowUserEntry is a follower/following list row annotated for the requester
type FollowUserEntry struct {
	UserCompact
	FollowerCount int  `json:"follower_count"`
	IsFollowing   bool `json:"is_following"` // whether the requester follows this user
}
