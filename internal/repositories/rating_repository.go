package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// RatingRepository defines the interface for rating data operations
type RatingRepository interface {
	WithTx(tx *gorm.DB) RatingRepository
	CreateRating(rating *models.Rating) error
	GetRating(promptID, userID uint) (*models.Rating, error)
	GetUserRatings(userID uint, promptIDs []uint) (map[uint]int, error)
	UpdateRating(rating *models.Rating) error
	DeleteRating(id uint) error
	DeleteByPromptID(promptID uint) error
	GetAggregate(promptID uint) (float64, int, error)
	GetDistribution(promptID uint) (map[int]int, error)
}

// PostgresRatingRepository implements RatingRepository for PostgreSQL
type PostgresRatingRepository struct {
	db *gorm.DB
}

// NewPostgresRatingRepository creates a new PostgresRatingRepository
func NewPostgresRatingRepository(db *gorm.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresRatingRepository) WithTx(tx *gorm.DB) RatingRepository {
	return &PostgresRatingRepository{db: tx}
}

// CreateRating inserts a rating; the composite unique index on
// (prompt_id, user_id) serializes concurrent creates for the same pair
func (r *PostgresRatingRepository) CreateRating(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetRating retrieves the rating a user placed on a prompt
func (r *PostgresRatingRepository) GetRating(promptID, userID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.Where("prompt_id = ? AND user_id = ?", promptID, userID).First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetUserRatings returns the user's scores for the given prompts keyed by prompt ID
func (r *PostgresRatingRepository) GetUserRatings(userID uint, promptIDs []uint) (map[uint]int, error) {
	result := make(map[uint]int)
	if len(promptIDs) == 0 {
		return result, nil
	}
	var ratings []models.Rating
	if err := r.db.Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).Find(&ratings).Error; err != nil {
		return nil, err
	}
	for _, rt := range ratings {
		result[rt.PromptID] = rt.Score
	}
	return result, nil
}

// UpdateRating saves an existing rating
func (r *PostgresRatingRepository) UpdateRating(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// DeleteRating deletes a rating by ID
func (r *PostgresRatingRepository) DeleteRating(id uint) error {
	return r.db.Delete(&models.Rating{}, id).Error
}

// DeleteByPromptID removes every rating on a prompt
func (r *PostgresRatingRepository) DeleteByPromptID(promptID uint) error {
	return r.db.Where("prompt_id = ?", promptID).Delete(&models.Rating{}).Error
}

// GetAggregate recomputes the arithmetic mean and count over all scores of a prompt
func (r *PostgresRatingRepository) GetAggregate(promptID uint) (float64, int, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("prompt_id = ?", promptID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Average, int(row.Count), nil
}

// GetDistribution returns a score -> count map with all five buckets present
func (r *PostgresRatingRepository) GetDistribution(promptID uint) (map[int]int, error) {
	var rows []struct {
		Score int
		Count int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("score, COUNT(*) AS count").
		Where("prompt_id = ?", promptID).
		Group("score").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, row := range rows {
		dist[row.Score] = int(row.Count)
	}
	return dist, nil
}
