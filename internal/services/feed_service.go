package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
)

// FeedService assembles the personalized feed on read. It owns no storage
// and no counters; everything is derived from the follow graph and the
// prompt store.
type FeedService interface {
	GetFeed(userID uint, page, limit int) ([]models.PromptSummary, int64, error)
}

type feedService struct {
	followRepo   repositories.FollowRepository
	promptRepo   repositories.PromptRepository
	userRepo     repositories.UserRepository
	likeRepo     repositories.LikeRepository
	ratingRepo   repositories.RatingRepository
	bookmarkRepo repositories.BookmarkRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(
	followRepo repositories.FollowRepository,
	promptRepo repositories.PromptRepository,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
	ratingRepo repositories.RatingRepository,
	bookmarkRepo repositories.BookmarkRepository,
) FeedService {
	return &feedService{
		followRepo:   followRepo,
		promptRepo:   promptRepo,
		userRepo:     userRepo,
		likeRepo:     likeRepo,
		ratingRepo:   ratingRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *feedService) GetFeed(userID uint, page, limit int) ([]models.PromptSummary, int64, error) {
	followingIDs, err := s.followRepo.GetFollowingIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	// Following nobody means an empty page; the prompt store is not queried.
	if len(followingIDs) == 0 {
		return []models.PromptSummary{}, 0, nil
	}

	_, limit, offset := normalizePage(page, limit, 20)
	prompts, total, err := s.promptRepo.ListPublicByAuthorIDs(followingIDs, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	promptIDs := make([]uint, len(prompts))
	authorIDs := make(map[uint]bool)
	for i, p := range prompts {
		promptIDs[i] = p.ID
		authorIDs[p.AuthorID] = true
	}

	likedSet, err := s.likeRepo.GetLikedPromptIDs(userID, promptIDs)
	if err != nil {
		return nil, 0, err
	}
	bookmarkedSet, err := s.bookmarkRepo.GetBookmarkedPromptIDs(userID, promptIDs)
	if err != nil {
		return nil, 0, err
	}
	ratings, err := s.ratingRepo.GetUserRatings(userID, promptIDs)
	if err != nil {
		return nil, 0, err
	}

	authors := make(map[uint]models.UserCompact, len(authorIDs))
	for id := range authorIDs {
		if author, err := s.userRepo.GetUserByID(id); err == nil {
			authors[id] = author.ToCompact()
		}
	}

	summaries := make([]models.PromptSummary, len(prompts))
	for i, p := range prompts {
		summaries[i] = models.PromptSummary{
			Prompt:       p,
			Author:       authors[p.AuthorID],
			IsLiked:      likedSet[p.ID],
			IsBookmarked: bookmarkedSet[p.ID],
			UserRating:   ratings[p.ID],
		}
	}
	return summaries, total, nil
}
