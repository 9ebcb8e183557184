package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// LikeService implements like toggling. Existence of the row is the state;
// the prompt counter moves in the same transaction as the row.
type LikeService interface {
	Toggle(promptID, userID uint) (liked bool, likeCount int, err error)
}

type likeService struct {
	db         *gorm.DB
	likeRepo   repositories.LikeRepository
	promptRepo repositories.PromptRepository
	userRepo   repositories.UserRepository
	notifier   NotificationService
}

// NewLikeService creates a new LikeService
func NewLikeService(
	db *gorm.DB,
	likeRepo repositories.LikeRepository,
	promptRepo repositories.PromptRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) LikeService {
	return &likeService{
		db:         db,
		likeRepo:   likeRepo,
		promptRepo: promptRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// Toggle likes the prompt if the user has not liked it, unlikes otherwise.
// Liking your own prompt is allowed; the notification producer skips the
// self case on its own.
func (s *likeService) Toggle(promptID, userID uint) (bool, int, error) {
	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return false, 0, ErrPromptNotFound
		}
		return false, 0, err
	}

	actor, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return false, 0, ErrUserNotFound
		}
		return false, 0, err
	}

	liked, err := s.likeRepo.HasUserLiked(promptID, userID)
	if err != nil {
		return false, 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		likes := s.likeRepo.WithTx(tx)
		prompts := s.promptRepo.WithTx(tx)
		if liked {
			removed, err := likes.DeleteLike(promptID, userID)
			if err != nil {
				return err
			}
			if !removed {
				// Lost a race with another unlike; nothing to decrement.
				return nil
			}
			return prompts.AdjustLikeCount(promptID, -1)
		}
		if err := likes.CreateLike(&models.Like{PromptID: promptID, UserID: userID}); err != nil {
			return err
		}
		if err := prompts.AdjustLikeCount(promptID, 1); err != nil {
			return err
		}
		return s.notifier.NotifyPromptLiked(tx, actor, prompt)
	})
	if err != nil {
		return false, 0, err
	}

	updated, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		return false, 0, err
	}
	return !liked, updated.LikeCount, nil
}
