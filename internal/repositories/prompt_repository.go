package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// PromptFilter describes the optional predicates of a prompt listing.
// Branch combinations (search x category) compose as GORM scopes instead of
// being spelled out per combination.
type PromptFilter struct {
	Category string
	Search   string
}

// Scope returns the filter as a composable GORM scope
func (f PromptFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Search != "" {
			pattern := "%" + f.Search + "%"
			db = db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
		}
		return db
	}
}

// PromptRepository defines the interface for prompt data operations
type PromptRepository interface {
	WithTx(tx *gorm.DB) PromptRepository
	CreatePrompt(prompt *models.Prompt) error
	GetPromptByID(id uint) (*models.Prompt, error)
	ListPublic(filter PromptFilter, offset, limit int) ([]models.Prompt, int64, error)
	ListPublicByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Prompt, int64, error)
	ListByIDs(ids []uint) ([]models.Prompt, error)
	UpdatePrompt(prompt *models.Prompt) error
	DeletePrompt(id uint) error
	IncrementViewCount(id uint) error
	AdjustLikeCount(id uint, delta int) error
	AdjustBookmarkCount(id uint, delta int) error
	SetRatingAggregate(id uint, average float64, count int) error
}

// PostgresPromptRepository implements PromptRepository for PostgreSQL
type PostgresPromptRepository struct {
	db *gorm.DB
}

// NewPostgresPromptRepository creates a new PostgresPromptRepository
func NewPostgresPromptRepository(db *gorm.DB) *PostgresPromptRepository {
	return &PostgresPromptRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresPromptRepository) WithTx(tx *gorm.DB) PromptRepository {
	return &PostgresPromptRepository{db: tx}
}

// CreatePrompt creates a new prompt
func (r *PostgresPromptRepository) CreatePrompt(prompt *models.Prompt) error {
	return r.db.Create(prompt).Error
}

// GetPromptByID retrieves a prompt by ID
func (r *PostgresPromptRepository) GetPromptByID(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.First(&prompt, id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ListPublic retrieves public prompts matching the filter, newest first
func (r *PostgresPromptRepository) ListPublic(filter PromptFilter, offset, limit int) ([]models.Prompt, int64, error) {
	var prompts []models.Prompt
	var total int64
	q := r.db.Model(&models.Prompt{}).Where("is_public = ?", true).Scopes(filter.Scope())
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&prompts).Error
	return prompts, total, err
}

// ListPublicByAuthorIDs retrieves public prompts authored by any of the given users, newest first
func (r *PostgresPromptRepository) ListPublicByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Prompt, int64, error) {
	var prompts []models.Prompt
	var total int64
	q := r.db.Model(&models.Prompt{}).Where("is_public = ? AND author_id IN ?", true, authorIDs)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&prompts).Error
	return prompts, total, err
}

// ListByIDs retrieves prompts by primary key
func (r *PostgresPromptRepository) ListByIDs(ids []uint) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if len(ids) == 0 {
		return prompts, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&prompts).Error
	return prompts, err
}

// UpdatePrompt saves an existing prompt
func (r *PostgresPromptRepository) UpdatePrompt(prompt *models.Prompt) error {
	return r.db.Save(prompt).Error
}

// DeletePrompt deletes a prompt by ID
func (r *PostgresPromptRepository) DeletePrompt(id uint) error {
	return r.db.Delete(&models.Prompt{}, id).Error
}

// IncrementViewCount bumps the view counter of a prompt
func (r *PostgresPromptRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// AdjustLikeCount shifts the like counter of a prompt by delta
func (r *PostgresPromptRepository) AdjustLikeCount(id uint, delta int) error {
	return r.db.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}

// AdjustBookmarkCount shifts the bookmark counter of a prompt by delta
func (r *PostgresPromptRepository) AdjustBookmarkCount(id uint, delta int) error {
	return r.db.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + ?", delta)).Error
}

// SetRatingAggregate writes the recomputed rating average and count
func (r *PostgresPromptRepository) SetRatingAggregate(id uint, average float64, count int) error {
	return r.db.Model(&models.Prompt{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"average_rating": average,
			"rating_count":   count,
		}).Error
}
