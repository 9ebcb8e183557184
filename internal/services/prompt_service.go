package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// PromptService owns the prompt store: CRUD, view counting, and the cascades
// a deletion triggers across the engagement rows.
type PromptService interface {
	Create(authorID uint, req *models.CreatePromptRequest) (*models.Prompt, error)
	Get(promptID, callerID uint) (*models.Prompt, error)
	List(filter repositories.PromptFilter, page, limit int) ([]models.Prompt, int64, error)
	Update(promptID, authorID uint, req *models.UpdatePromptRequest) (*models.Prompt, error)
	Delete(promptID, authorID uint) error
}

type promptService struct {
	db           *gorm.DB
	promptRepo   repositories.PromptRepository
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	ratingRepo   repositories.RatingRepository
	likeRepo     repositories.LikeRepository
	bookmarkRepo repositories.BookmarkRepository
	folderRepo   repositories.BookmarkFolderRepository
	notifRepo    repositories.NotificationRepository
	notifier     NotificationService
}

// NewPromptService creates a new PromptService
func NewPromptService(
	db *gorm.DB,
	promptRepo repositories.PromptRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	ratingRepo repositories.RatingRepository,
	likeRepo repositories.LikeRepository,
	bookmarkRepo repositories.BookmarkRepository,
	folderRepo repositories.BookmarkFolderRepository,
	notifRepo repositories.NotificationRepository,
	notifier NotificationService,
) PromptService {
	return &promptService{
		db:           db,
		promptRepo:   promptRepo,
		userRepo:     userRepo,
		followRepo:   followRepo,
		ratingRepo:   ratingRepo,
		likeRepo:     likeRepo,
		bookmarkRepo: bookmarkRepo,
		folderRepo:   folderRepo,
		notifRepo:    notifRepo,
		notifier:     notifier,
	}
}

// Create publishes a prompt and fans out NEW_PROMPT notifications to the
// author's followers within the same transaction
func (s *promptService) Create(authorID uint, req *models.CreatePromptRequest) (*models.Prompt, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	author, err := s.userRepo.GetUserByID(authorID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	prompt := &models.Prompt{
		AuthorID:    authorID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublic:    isPublic,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.promptRepo.WithTx(tx).CreatePrompt(prompt); err != nil {
			return err
		}
		if !prompt.IsPublic {
			return nil
		}
		followerIDs, err := s.followRepo.WithTx(tx).GetFollowerIDs(authorID)
		if err != nil {
			return err
		}
		return s.notifier.NotifyNewPrompt(tx, author, prompt, followerIDs)
	})
	if err != nil {
		return nil, err
	}
	return prompt, nil
}

// Get returns a prompt and counts the view. Private prompts are visible only
// to their author.
func (s *promptService) Get(promptID, callerID uint) (*models.Prompt, error) {
	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	if !prompt.IsPublic && prompt.AuthorID != callerID {
		return nil, ErrPromptNotFound
	}
	if err := s.promptRepo.IncrementViewCount(promptID); err != nil {
		return nil, err
	}
	prompt.ViewCount++
	return prompt, nil
}

func (s *promptService) List(filter repositories.PromptFilter, page, limit int) ([]models.Prompt, int64, error) {
	if filter.Category != "" && !models.IsValidCategory(filter.Category) {
		return nil, 0, ErrInvalidCategory
	}
	_, limit, offset := normalizePage(page, limit, 20)
	return s.promptRepo.ListPublic(filter, offset, limit)
}

func (s *promptService) Update(promptID, authorID uint, req *models.UpdatePromptRequest) (*models.Prompt, error) {
	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	if prompt.AuthorID != authorID {
		return nil, ErrPromptAccessDenied
	}

	if req.Title != "" {
		prompt.Title = req.Title
	}
	if req.Description != nil {
		prompt.Description = *req.Description
	}
	if req.Content != "" {
		prompt.Content = req.Content
	}
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return nil, ErrInvalidCategory
		}
		prompt.Category = req.Category
	}
	if req.Tags != nil {
		prompt.Tags = req.Tags
	}
	if req.IsPublic != nil {
		prompt.IsPublic = *req.IsPublic
	}

	if err := s.promptRepo.UpdatePrompt(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// Delete removes a prompt and every engagement row that references it as one
// unit: ratings, likes, bookmarks (with their folder counters), and
// notifications pointing at the prompt.
func (s *promptService) Delete(promptID, authorID uint) error {
	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return ErrPromptNotFound
		}
		return err
	}
	if prompt.AuthorID != authorID {
		return ErrPromptAccessDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		bookmarks := s.bookmarkRepo.WithTx(tx)
		members, err := bookmarks.ListByPromptID(promptID)
		if err != nil {
			return err
		}
		folders := s.folderRepo.WithTx(tx)
		for _, b := range members {
			if b.FolderID != nil {
				if err := folders.AdjustBookmarkCount(*b.FolderID, -1); err != nil {
					return err
				}
			}
		}
		if err := bookmarks.DeleteByPromptID(promptID); err != nil {
			return err
		}
		if err := s.likeRepo.WithTx(tx).DeleteByPromptID(promptID); err != nil {
			return err
		}
		if err := s.ratingRepo.WithTx(tx).DeleteByPromptID(promptID); err != nil {
			return err
		}
		if err := s.notifRepo.WithTx(tx).DeleteByEntity("prompt", promptID); err != nil {
			return err
		}
		return s.promptRepo.WithTx(tx).DeletePrompt(promptID)
	})
}
