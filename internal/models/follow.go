package models

import "time"

// Follow represents a directed follow edge between two users
type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	FollowingID uint      `json:"following_id" gorm:"index;uniqueIndex:idx_follower_following;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowStatus is the pair of independent existence checks between two users
type FollowStatus struct {
	IsFollowing  bool `json:"is_following"`
	IsFollowedBy bool `json:"is_followed_by"`
}
