package repositories

import (
	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByNickname(nickname string) (*models.User, error)
	SearchUsers(query string, offset, limit int) ([]models.User, int64, error)
	AdjustFollowerCount(userID uint, delta int) error
	AdjustFollowingCount(userID uint, delta int) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PostgresUserRepository) WithTx(tx *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: tx}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByNickname retrieves a user by nickname
func (r *PostgresUserRepository) GetUserByNickname(nickname string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers searches for users by nickname or email (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string, offset, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64
	pattern := "%" + query + "%"
	q := r.db.Model(&models.User{}).
		Where("LOWER(nickname) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nickname ASC").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

// AdjustFollowerCount shifts a user's follower counter by delta
func (r *PostgresUserRepository) AdjustFollowerCount(userID uint, delta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("follower_count", gorm.Expr("follower_count + ?", delta)).Error
}

// AdjustFollowingCount shifts a user's following counter by delta
func (r *PostgresUserRepository) AdjustFollowingCount(userID uint, delta int) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("following_count", gorm.Expr("following_count + ?", delta)).Error
}
