package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NotificationService owns the notification outbox: listing, read state,
// retention cleanup, and the producers the other services call when a social
// or engagement event happens.
type NotificationService interface {
	List(userID uint, filter repositories.NotificationFilter, page, limit int) ([]models.Notification, int64, error)
	MarkAsRead(userID, notificationID uint) error
	MarkAllAsRead(userID uint) (int64, error)
	Delete(userID, notificationID uint) error
	UnreadCount(userID uint) (int64, error)
	Cleanup(now time.Time) (int64, error)

	// Producers run inside the caller's transaction. Each one skips
	// creation when the actor is the recipient.
	NotifyUserFollowed(tx *gorm.DB, follower *models.User, followingID uint) error
	NotifyPromptLiked(tx *gorm.DB, actor *models.User, prompt *models.Prompt) error
	NotifyPromptRated(tx *gorm.DB, actor *models.User, prompt *models.Prompt, score int) error
	NotifyPromptBookmarked(tx *gorm.DB, actor *models.User, prompt *models.Prompt) error
	NotifyNewPrompt(tx *gorm.DB, author *models.User, prompt *models.Prompt, followerIDs []uint) error
}

type notificationService struct {
	db        *gorm.DB
	notifRepo repositories.NotificationRepository
	logger    *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(db *gorm.DB, notifRepo repositories.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notificationService{db: db, notifRepo: notifRepo, logger: logger}
}

func (s *notificationService) List(userID uint, filter repositories.NotificationFilter, page, limit int) ([]models.Notification, int64, error) {
	_, limit, offset := normalizePage(page, limit, 20)
	return s.notifRepo.GetByRecipientID(userID, filter, offset, limit)
}

func (s *notificationService) MarkAsRead(userID, notificationID uint) error {
	notification, err := s.notifRepo.GetByID(notificationID)
	if err != nil {
		if isNotFound(err) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.RecipientID != userID {
		return ErrNotificationAccessDenied
	}
	if notification.IsRead {
		return nil
	}
	return s.notifRepo.MarkAsRead(notificationID, time.Now())
}

func (s *notificationService) MarkAllAsRead(userID uint) (int64, error) {
	return s.notifRepo.MarkAllAsRead(userID, time.Now())
}

func (s *notificationService) Delete(userID, notificationID uint) error {
	notification, err := s.notifRepo.GetByID(notificationID)
	if err != nil {
		if isNotFound(err) {
			return ErrNotificationNotFound
		}
		return err
	}
	if notification.RecipientID != userID {
		return ErrNotificationAccessDenied
	}
	return s.notifRepo.DeleteNotification(notificationID)
}

func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	return s.notifRepo.GetUnreadCount(userID)
}

// Cleanup deletes read notifications older than 30 days and unread ones older
// than 90 days. Triggered by an external scheduler, never self-invoked.
func (s *notificationService) Cleanup(now time.Time) (int64, error) {
	deleted, err := s.notifRepo.DeleteExpired(now)
	if err != nil {
		return 0, err
	}
	s.logger.Info("notification cleanup sweep finished", zap.Int64("deleted", deleted))
	return deleted, nil
}

func (s *notificationService) NotifyUserFollowed(tx *gorm.DB, follower *models.User, followingID uint) error {
	if follower.ID == followingID {
		return nil
	}
	senderID := follower.ID
	return s.notifRepo.WithTx(tx).CreateNotification(&models.Notification{
		RecipientID: followingID,
		SenderID:    &senderID,
		Type:        models.NotificationTypeUserFollowed,
		Title:       "New follower",
		Message:     fmt.Sprintf("%s started following you", follower.Nickname),
		EntityType:  "user",
		EntityID:    follower.ID,
	})
}

func (s *notificationService) NotifyPromptLiked(tx *gorm.DB, actor *models.User, prompt *models.Prompt) error {
	if actor.ID == prompt.AuthorID {
		return nil
	}
	senderID := actor.ID
	return s.notifRepo.WithTx(tx).CreateNotification(&models.Notification{
		RecipientID: prompt.AuthorID,
		SenderID:    &senderID,
		Type:        models.NotificationTypePromptLiked,
		Title:       "Prompt liked",
		Message:     fmt.Sprintf("%s liked \"%s\"", actor.Nickname, prompt.Title),
		EntityType:  "prompt",
		EntityID:    prompt.ID,
	})
}

func (s *notificationService) NotifyPromptRated(tx *gorm.DB, actor *models.User, prompt *models.Prompt, score int) error {
	if actor.ID == prompt.AuthorID {
		return nil
	}
	senderID := actor.ID
	return s.notifRepo.WithTx(tx).CreateNotification(&models.Notification{
		RecipientID: prompt.AuthorID,
		SenderID:    &senderID,
		Type:        models.NotificationTypePromptRated,
		Title:       "Prompt rated",
		Message:     fmt.Sprintf("%s rated \"%s\" %s", actor.Nickname, prompt.Title, StarString(score)),
		EntityType:  "prompt",
		EntityID:    prompt.ID,
	})
}

func (s *notificationService) NotifyPromptBookmarked(tx *gorm.DB, actor *models.User, prompt *models.Prompt) error {
	if actor.ID == prompt.AuthorID {
		return nil
	}
	senderID := actor.ID
	return s.notifRepo.WithTx(tx).CreateNotification(&models.Notification{
		RecipientID: prompt.AuthorID,
		SenderID:    &senderID,
		Type:        models.NotificationTypePromptBookmarked,
		Title:       "Prompt bookmarked",
		Message:     fmt.Sprintf("%s bookmarked \"%s\"", actor.Nickname, prompt.Title),
		EntityType:  "prompt",
		EntityID:    prompt.ID,
	})
}

// NotifyNewPrompt fans out one notification per follower of the author
func (s *notificationService) NotifyNewPrompt(tx *gorm.DB, author *models.User, prompt *models.Prompt, followerIDs []uint) error {
	repo := s.notifRepo.WithTx(tx)
	senderID := author.ID
	for _, recipientID := range followerIDs {
		if recipientID == author.ID {
			continue
		}
		err := repo.CreateNotification(&models.Notification{
			RecipientID: recipientID,
			SenderID:    &senderID,
			Type:        models.NotificationTypeNewPrompt,
			Title:       "New prompt",
			Message:     fmt.Sprintf("%s published \"%s\"", author.Nickname, prompt.Title),
			EntityType:  "prompt",
			EntityID:    prompt.ID,
		})
		if err != nil {
			return err
		}
	}
	s.logger.Debug("new prompt fanout",
		zap.Uint("prompt_id", prompt.ID),
		zap.Int("recipients", len(followerIDs)))
	return nil
}

// StarString renders a 1..5 score as filled and hollow stars, e.g. 3 -> ★★★☆☆
func StarString(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}
