package repositories

import (
	"time"

	"github.com/promptdeck/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationFilter narrows a notification listing
type NotificationFilter struct {
	UnreadOnly bool
	Type       string
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	WithTx(tx *gorm.DB) NotificationRepository
	CreateNotification(notification *models.Notification) error
	GetByID(id uint) (*models.Notification, error)
	GetByRecipientID(recipientID uint, filter NotificationFilter, offset, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(recipientID uint) (int64, error)
	MarkAsRead(id uint, readAt time.Time) error
	MarkAllAsRead(recipientID uint, readAt time.Time) (int64, error)
	DeleteNotification(id uint) error
	DeleteByEntity(entityType string, entityID uint) error
	DeleteExpired(now time.Time) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates the PostgreSQL notification repository
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) WithTx(tx *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: tx}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *postgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID uint, filter NotificationFilter, offset, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	q := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(id uint, readAt time.Time) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt}).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(recipientID uint, readAt time.Time) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt})
	return res.RowsAffected, res.Error
}

func (r *postgresNotificationRepository) DeleteNotification(id uint) error {
	return r.db.Delete(&models.Notification{}, id).Error
}

func (r *postgresNotificationRepository) DeleteByEntity(entityType string, entityID uint) error {
	return r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Delete(&models.Notification{}).Error
}

// DeleteExpired removes read notifications past the 30-day window and unread
// ones past the 90-day window, returning the total rows removed
func (r *postgresNotificationRepository) DeleteExpired(now time.Time) (int64, error) {
	readCutoff := now.Add(-models.ReadNotificationRetention)
	unreadCutoff := now.Add(-models.UnreadNotificationRetention)
	res := r.db.
		Where("(is_read = ? AND created_at < ?) OR (is_read = ? AND created_at < ?)",
			true, readCutoff, false, unreadCutoff).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}
