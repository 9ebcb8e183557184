package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	WithTx(tx *gorm.DB) LikeRepository
	CreateLike(like *models.Like) error
	DeleteLike(promptID, userID uint) (bool, error)
	HasUserLiked(promptID, userID uint) (bool, error)
	GetLikedPromptIDs(userID uint, promptIDs []uint) (map[uint]bool, error)
	DeleteByPromptID(promptID uint) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresLikeRepository) WithTx(tx *gorm.DB) LikeRepository {
	return &PostgresLikeRepository{db: tx}
}

// CreateLike inserts a like; uniqueness of (prompt_id, user_id) is index-enforced
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// DeleteLike removes a like and reports whether a row existed
func (r *PostgresLikeRepository) DeleteLike(promptID, userID uint) (bool, error) {
	res := r.db.Where("prompt_id = ? AND user_id = ?", promptID, userID).Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasUserLiked checks if a user has liked a specific prompt
func (r *PostgresLikeRepository) HasUserLiked(promptID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("prompt_id = ? AND user_id = ?", promptID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikedPromptIDs returns which of the given prompts the user has liked
func (r *PostgresLikeRepository) GetLikedPromptIDs(userID uint, promptIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(promptIDs) == 0 {
		return result, nil
	}
	var likes []models.Like
	if err := r.db.Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.PromptID] = true
	}
	return result, nil
}

// DeleteByPromptID removes every like on a prompt
func (r *PostgresLikeRepository) DeleteByPromptID(promptID uint) error {
	return r.db.Where("prompt_id = ?", promptID).Delete(&models.Like{}).Error
}
