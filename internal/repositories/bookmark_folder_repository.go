package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkFolderRepository defines the interface for bookmark folder operations
type BookmarkFolderRepository interface {
	WithTx(tx *gorm.DB) BookmarkFolderRepository
	CreateFolder(folder *models.BookmarkFolder) error
	GetFolderByID(id uint) (*models.BookmarkFolder, error)
	GetByUserAndName(userID uint, name string) (*models.BookmarkFolder, error)
	CountByUser(userID uint) (int64, error)
	ListByUser(userID uint) ([]models.BookmarkFolder, error)
	UpdateFolder(folder *models.BookmarkFolder) error
	DeleteFolder(id uint) error
	AdjustBookmarkCount(id uint, delta int) error
}

// PostgresBookmarkFolderRepository implements BookmarkFolderRepository for PostgreSQL
type PostgresBookmarkFolderRepository struct {
	db *gorm.DB
}

// NewPostgresBookmarkFolderRepository creates a new PostgresBookmarkFolderRepository
func NewPostgresBookmarkFolderRepository(db *gorm.DB) *PostgresBookmarkFolderRepository {
	return &PostgresBookmarkFolderRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresBookmarkFolderRepository) WithTx(tx *gorm.DB) BookmarkFolderRepository {
	return &PostgresBookmarkFolderRepository{db: tx}
}

// CreateFolder creates a new folder
func (r *PostgresBookmarkFolderRepository) CreateFolder(folder *models.BookmarkFolder) error {
	return r.db.Create(folder).Error
}

// GetFolderByID retrieves a folder by primary key
func (r *PostgresBookmarkFolderRepository) GetFolderByID(id uint) (*models.BookmarkFolder, error) {
	var folder models.BookmarkFolder
	if err := r.db.First(&folder, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// GetByUserAndName retrieves a folder by owner and exact name
func (r *PostgresBookmarkFolderRepository) GetByUserAndName(userID uint, name string) (*models.BookmarkFolder, error) {
	var folder models.BookmarkFolder
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

// CountByUser counts the folders a user owns
func (r *PostgresBookmarkFolderRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BookmarkFolder{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListByUser retrieves all folders of a user ordered by name
func (r *PostgresBookmarkFolderRepository) ListByUser(userID uint) ([]models.BookmarkFolder, error) {
	var folders []models.BookmarkFolder
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&folders).Error
	return folders, err
}

// UpdateFolder saves an existing folder
func (r *PostgresBookmarkFolderRepository) UpdateFolder(folder *models.BookmarkFolder) error {
	return r.db.Save(folder).Error
}

// DeleteFolder deletes a folder by ID
func (r *PostgresBookmarkFolderRepository) DeleteFolder(id uint) error {
	return r.db.Delete(&models.BookmarkFolder{}, id).Error
}

// AdjustBookmarkCount shifts a folder's bookmark counter by delta
func (r *PostgresBookmarkFolderRepository) AdjustBookmarkCount(id uint, delta int) error {
	return r.db.Model(&models.BookmarkFolder{}).Where("id = ?", id).
		UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + ?", delta)).Error
}
