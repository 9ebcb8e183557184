package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark data operations
type BookmarkRepository interface {
	WithTx(tx *gorm.DB) BookmarkRepository
	CreateBookmark(bookmark *models.Bookmark) error
	GetBookmark(promptID, userID uint) (*models.Bookmark, error)
	GetBookmarkByID(id uint) (*models.Bookmark, error)
	DeleteBookmark(id uint) error
	ListByUser(userID uint, folderID *uint, offset, limit int) ([]models.Bookmark, int64, error)
	ListByPromptID(promptID uint) ([]models.Bookmark, error)
	SetFolder(bookmarkID uint, folderID *uint) error
	ClearFolder(folderID uint) error
	DeleteByPromptID(promptID uint) error
	GetBookmarkedPromptIDs(userID uint, promptIDs []uint) (map[uint]bool, error)
}

// PostgresBookmarkRepository implements BookmarkRepository for PostgreSQL
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

// NewPostgresBookmarkRepository creates a new PostgresBookmarkRepository
func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresBookmarkRepository) WithTx(tx *gorm.DB) BookmarkRepository {
	return &PostgresBookmarkRepository{db: tx}
}

// CreateBookmark inserts a bookmark; uniqueness of (prompt_id, user_id) is index-enforced
func (r *PostgresBookmarkRepository) CreateBookmark(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

// GetBookmark retrieves a user's bookmark of a prompt
func (r *PostgresBookmarkRepository) GetBookmark(promptID, userID uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.Where("prompt_id = ? AND user_id = ?", promptID, userID).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// GetBookmarkByID retrieves a bookmark by primary key
func (r *PostgresBookmarkRepository) GetBookmarkByID(id uint) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.First(&bookmark, id).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// DeleteBookmark deletes a bookmark by ID
func (r *PostgresBookmarkRepository) DeleteBookmark(id uint) error {
	return r.db.Delete(&models.Bookmark{}, id).Error
}

// ListByUser retrieves a user's bookmarks, newest first, optionally scoped to one folder
func (r *PostgresBookmarkRepository) ListByUser(userID uint, folderID *uint, offset, limit int) ([]models.Bookmark, int64, error) {
	var bookmarks []models.Bookmark
	var total int64
	q := r.db.Model(&models.Bookmark{}).Where("user_id = ?", userID)
	if folderID != nil {
		q = q.Where("folder_id = ?", *folderID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&bookmarks).Error
	return bookmarks, total, err
}

// ListByPromptID retrieves every bookmark of a prompt
func (r *PostgresBookmarkRepository) ListByPromptID(promptID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Where("prompt_id = ?", promptID).Find(&bookmarks).Error
	return bookmarks, err
}

// SetFolder refiles a bookmark into a folder (nil means uncategorized)
func (r *PostgresBookmarkRepository) SetFolder(bookmarkID uint, folderID *uint) error {
	return r.db.Model(&models.Bookmark{}).Where("id = ?", bookmarkID).
		Update("folder_id", folderID).Error
}

// ClearFolder re-parents all bookmarks of a folder to uncategorized
func (r *PostgresBookmarkRepository) ClearFolder(folderID uint) error {
	return r.db.Model(&models.Bookmark{}).Where("folder_id = ?", folderID).
		Update("folder_id", nil).Error
}

// DeleteByPromptID removes every bookmark of a prompt
func (r *PostgresBookmarkRepository) DeleteByPromptID(promptID uint) error {
	return r.db.Where("prompt_id = ?", promptID).Delete(&models.Bookmark{}).Error
}

// GetBookmarkedPromptIDs returns which of the given prompts the user has bookmarked
func (r *PostgresBookmarkRepository) GetBookmarkedPromptIDs(userID uint, promptIDs []uint) (map[uint]bool, error) {
	result := make(map[uint]bool)
	if len(promptIDs) == 0 {
		return result, nil
	}
	var bookmarks []models.Bookmark
	if err := r.db.Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	for _, b := range bookmarks {
		result[b.PromptID] = true
	}
	return result, nil
}
