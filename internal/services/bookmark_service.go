package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// BookmarkService implements bookmark toggling, folders, and refiling.
// Bookmarking your own prompt is forbidden; folder membership is soft and
// never outlives the bookmark itself.
type BookmarkService interface {
	Toggle(promptID, userID uint) (bookmarked bool, bookmarkCount int, err error)
	List(userID uint, folderID *uint, page, limit int) ([]models.PromptSummary, int64, error)
	CreateFolder(userID uint, name, description string) (*models.BookmarkFolder, error)
	UpdateFolder(folderID, userID uint, name, description string) (*models.BookmarkFolder, error)
	DeleteFolder(folderID, userID uint) error
	ListFolders(userID uint) ([]models.BookmarkFolder, error)
	Move(bookmarkID, userID uint, targetFolderID *uint) error
}

type bookmarkService struct {
	db           *gorm.DB
	bookmarkRepo repositories.BookmarkRepository
	folderRepo   repositories.BookmarkFolderRepository
	promptRepo   repositories.PromptRepository
	userRepo     repositories.UserRepository
	notifier     NotificationService
}

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(
	db *gorm.DB,
	bookmarkRepo repositories.BookmarkRepository,
	folderRepo repositories.BookmarkFolderRepository,
	promptRepo repositories.PromptRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) BookmarkService {
	return &bookmarkService{
		db:           db,
		bookmarkRepo: bookmarkRepo,
		folderRepo:   folderRepo,
		promptRepo:   promptRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func (s *bookmarkService) Toggle(promptID, userID uint) (bool, int, error) {
	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return false, 0, ErrPromptNotFound
		}
		return false, 0, err
	}
	if err := checkSelfInteraction(interactionBookmark, userID, prompt.AuthorID); err != nil {
		return false, 0, err
	}

	actor, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return false, 0, ErrUserNotFound
		}
		return false, 0, err
	}

	existing, err := s.bookmarkRepo.GetBookmark(promptID, userID)
	if err != nil && !isNotFound(err) {
		return false, 0, err
	}
	bookmarked := existing != nil

	err = s.db.Transaction(func(tx *gorm.DB) error {
		bookmarks := s.bookmarkRepo.WithTx(tx)
		prompts := s.promptRepo.WithTx(tx)
		if bookmarked {
			if err := bookmarks.DeleteBookmark(existing.ID); err != nil {
				return err
			}
			if existing.FolderID != nil {
				if err := s.folderRepo.WithTx(tx).AdjustBookmarkCount(*existing.FolderID, -1); err != nil {
					return err
				}
			}
			return prompts.AdjustBookmarkCount(promptID, -1)
		}
		if err := bookmarks.CreateBookmark(&models.Bookmark{PromptID: promptID, UserID: userID}); err != nil {
			return err
		}
		if err := prompts.AdjustBookmarkCount(promptID, 1); err != nil {
			return err
		}
		return s.notifier.NotifyPromptBookmarked(tx, actor, prompt)
	})
	if err != nil {
		return false, 0, err
	}

	updated, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		return false, 0, err
	}
	return !bookmarked, updated.BookmarkCount, nil
}

func (s *bookmarkService) List(userID uint, folderID *uint, page, limit int) ([]models.PromptSummary, int64, error) {
	if folderID != nil {
		folder, err := s.folderRepo.GetFolderByID(*folderID)
		if err != nil {
			if isNotFound(err) {
				return nil, 0, ErrFolderNotFound
			}
			return nil, 0, err
		}
		if folder.UserID != userID {
			return nil, 0, ErrFolderNotFound
		}
	}

	_, limit, offset := normalizePage(page, limit, 20)
	bookmarks, total, err := s.bookmarkRepo.ListByUser(userID, folderID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	promptIDs := make([]uint, len(bookmarks))
	for i, b := range bookmarks {
		promptIDs[i] = b.PromptID
	}
	prompts, err := s.promptRepo.ListByIDs(promptIDs)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uint]models.Prompt, len(prompts))
	for _, p := range prompts {
		byID[p.ID] = p
	}

	summaries := make([]models.PromptSummary, 0, len(bookmarks))
	for _, b := range bookmarks {
		p, ok := byID[b.PromptID]
		if !ok {
			continue
		}
		summary := models.PromptSummary{Prompt: p, IsBookmarked: true}
		if author, err := s.userRepo.GetUserByID(p.AuthorID); err == nil {
			summary.Author = author.ToCompact()
		}
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

func (s *bookmarkService) CreateFolder(userID uint, name, description string) (*models.BookmarkFolder, error) {
	count, err := s.folderRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxBookmarkFolders {
		return nil, ErrFolderLimitReached
	}
	// Name collision is a case-sensitive exact match within one user.
	if _, err := s.folderRepo.GetByUserAndName(userID, name); err == nil {
		return nil, ErrFolderNameTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	folder := &models.BookmarkFolder{UserID: userID, Name: name, Description: description}
	if err := s.folderRepo.CreateFolder(folder); err != nil {
		return nil, translateDuplicate(err, ErrFolderNameTaken)
	}
	return folder, nil
}

func (s *bookmarkService) UpdateFolder(folderID, userID uint, name, description string) (*models.BookmarkFolder, error) {
	folder, err := s.folderRepo.GetFolderByID(folderID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}
	if folder.UserID != userID {
		return nil, ErrFolderNotFound
	}

	if existing, err := s.folderRepo.GetByUserAndName(userID, name); err == nil {
		if existing.ID != folderID {
			return nil, ErrFolderNameTaken
		}
	} else if !isNotFound(err) {
		return nil, err
	}

	folder.Name = name
	folder.Description = description
	if err := s.folderRepo.UpdateFolder(folder); err != nil {
		return nil, translateDuplicate(err, ErrFolderNameTaken)
	}
	return folder, nil
}

// DeleteFolder re-parents member bookmarks to uncategorized before removing
// the folder; bookmarks themselves are never cascaded away.
func (s *bookmarkService) DeleteFolder(folderID, userID uint) error {
	folder, err := s.folderRepo.GetFolderByID(folderID)
	if err != nil {
		if isNotFound(err) {
			return ErrFolderNotFound
		}
		return err
	}
	if folder.UserID != userID {
		return ErrFolderNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.bookmarkRepo.WithTx(tx).ClearFolder(folderID); err != nil {
			return err
		}
		return s.folderRepo.WithTx(tx).DeleteFolder(folderID)
	})
}

func (s *bookmarkService) ListFolders(userID uint) ([]models.BookmarkFolder, error) {
	return s.folderRepo.ListByUser(userID)
}

func (s *bookmarkService) Move(bookmarkID, userID uint, targetFolderID *uint) error {
	bookmark, err := s.bookmarkRepo.GetBookmarkByID(bookmarkID)
	if err != nil {
		if isNotFound(err) {
			return ErrBookmarkNotFound
		}
		return err
	}
	if bookmark.UserID != userID {
		return ErrBookmarkNotFound
	}

	if targetFolderID != nil {
		folder, err := s.folderRepo.GetFolderByID(*targetFolderID)
		if err != nil {
			if isNotFound(err) {
				return ErrFolderNotFound
			}
			return err
		}
		if folder.UserID != userID {
			return ErrFolderNotFound
		}
	}

	// No-op moves keep the counters untouched.
	if equalFolderID(bookmark.FolderID, targetFolderID) {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		folders := s.folderRepo.WithTx(tx)
		if err := s.bookmarkRepo.WithTx(tx).SetFolder(bookmarkID, targetFolderID); err != nil {
			return err
		}
		if bookmark.FolderID != nil {
			if err := folders.AdjustBookmarkCount(*bookmark.FolderID, -1); err != nil {
				return err
			}
		}
		if targetFolderID != nil {
			if err := folders.AdjustBookmarkCount(*targetFolderID, 1); err != nil {
				return err
			}
		}
		return nil
	})
}

func equalFolderID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
