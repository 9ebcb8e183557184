package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge operations
type FollowRepository interface {
	WithTx(tx *gorm.DB) FollowRepository
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followingID uint) (bool, error)
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowingIDs(userID uint) ([]uint, error)
	GetFollowerIDs(userID uint) ([]uint, error)
	ListFollowers(userID uint, offset, limit int) ([]models.User, int64, error)
	ListFollowing(userID uint, offset, limit int) ([]models.User, int64, error)
	GetFollowingSet(followerID uint, userIDs []uint) (map[uint]bool, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresFollowRepository) WithTx(tx *gorm.DB) FollowRepository {
	return &PostgresFollowRepository{db: tx}
}

// CreateFollow inserts a follow edge; the (follower_id, following_id) unique
// index makes concurrent duplicate follows lose the race
func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// DeleteFollow removes a follow edge and reports whether one existed
func (r *PostgresFollowRepository) DeleteFollow(followerID, followingID uint) (bool, error) {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFollowing checks whether follower follows following
func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowingIDs returns the IDs of everyone the user follows
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("following_id", &ids).Error
	return ids, err
}

// GetFollowerIDs returns the IDs of everyone following the user
func (r *PostgresFollowRepository) GetFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Pluck("follower_id", &ids).Error
	return ids, err
}

// ListFollowers retrieves the users following userID, most recent edge first
func (r *PostgresFollowRepository) ListFollowers(userID uint, offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	sub := r.db.Model(&models.Follow{}).Select("follower_id").Where("following_id = ?", userID)
	q := r.db.Model(&models.User{}).Where("id IN (?)", sub)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Joins("JOIN follows ON follows.follower_id = users.id AND follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, total, err
}

// ListFollowing retrieves the users that userID follows, most recent edge first
func (r *PostgresFollowRepository) ListFollowing(userID uint, offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	sub := r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", userID)
	q := r.db.Model(&models.User{}).Where("id IN (?)", sub)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Joins("JOIN follows ON follows.following_id = users.id AND follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, total, err
}

// GetFollowingSet returns which of the given users followerID follows
func (r *PostgresFollowRepository) GetFollowingSet(followerID uint, userIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(userIDs) == 0 {
		return result, nil
	}
	var edges []models.Follow
	if err := r.db.Where("follower_id = ? AND following_id IN ?", followerID, userIDs).Find(&edges).Error; err != nil {
		return nil, err
	}
	for _, e := range edges {
		result[e.FollowingID] = true
	}
	return result, nil
}
