package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// RatingResult carries a mutated rating together with the prompt aggregate it produced
type RatingResult struct {
	Rating        models.Rating `json:"rating"`
	AverageRating float64       `json:"average_rating"`
	RatingCount   int           `json:"rating_count"`
}

// RatingService implements the rating slice of the engagement ledger: one
// rating per (prompt, user), no self-rating, aggregates recomputed in the
// same transaction as the mutation.
type RatingService interface {
	Create(promptID, userID uint, score int, comment string) (*RatingResult, error)
	Update(promptID, userID uint, score int, comment string) (*RatingResult, error)
	Delete(promptID, userID uint) (averageRating float64, ratingCount int, err error)
	Stats(promptID, callerID uint) (*models.RatingStats, error)
}

type ratingService struct {
	db         *gorm.DB
	ratingRepo repositories.RatingRepository
	promptRepo repositories.PromptRepository
	userRepo   repositories.UserRepository
	notifier   NotificationService
}

// NewRatingService creates a new RatingService
func NewRatingService(
	db *gorm.DB,
	ratingRepo repositories.RatingRepository,
	promptRepo repositories.PromptRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) RatingService {
	return &ratingService{
		db:         db,
		ratingRepo: ratingRepo,
		promptRepo: promptRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

func (s *ratingService) Create(promptID, userID uint, score int, comment string) (*RatingResult, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	prompt, err := s.promptRepo.GetPromptByID(promptID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	if err := checkSelfInteraction(interactionRate, userID, prompt.AuthorID); err != nil {
		return nil, err
	}

	comment = SanitizeComment(comment)
	if len([]rune(comment)) > 1000 {
		return nil, ErrCommentTooLong
	}

	if _, err := s.ratingRepo.GetRating(promptID, userID); err == nil {
		return nil, ErrRatingAlreadyExists
	} else if !isNotFound(err) {
		return nil, err
	}

	actor, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	result := &RatingResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ratings := s.ratingRepo.WithTx(tx)
		rating := &models.Rating{PromptID: promptID, UserID: userID, Score: score, Comment: comment}
		if err := ratings.CreateRating(rating); err != nil {
			return translateDuplicate(err, ErrRatingAlreadyExists)
		}
		average, count, err := ratings.GetAggregate(promptID)
		if err != nil {
			return err
		}
		if err := s.promptRepo.WithTx(tx).SetRatingAggregate(promptID, average, count); err != nil {
			return err
		}
		if err := s.notifier.NotifyPromptRated(tx, actor, prompt, score); err != nil {
			return err
		}
		result.Rating = *rating
		result.AverageRating = average
		result.RatingCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ratingService) Update(promptID, userID uint, score int, comment string) (*RatingResult, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	rating, err := s.ratingRepo.GetRating(promptID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	if rating.UserID != userID {
		return nil, ErrRatingAccessDenied
	}

	comment = SanitizeComment(comment)
	if len([]rune(comment)) > 1000 {
		return nil, ErrCommentTooLong
	}

	result := &RatingResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ratings := s.ratingRepo.WithTx(tx)
		rating.Score = score
		rating.Comment = comment
		if err := ratings.UpdateRating(rating); err != nil {
			return err
		}
		// Count does not change on update, only the mean can move.
		average, count, err := ratings.GetAggregate(promptID)
		if err != nil {
			return err
		}
		if err := s.promptRepo.WithTx(tx).SetRatingAggregate(promptID, average, count); err != nil {
			return err
		}
		result.Rating = *rating
		result.AverageRating = average
		result.RatingCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ratingService) Delete(promptID, userID uint) (float64, int, error) {
	rating, err := s.ratingRepo.GetRating(promptID, userID)
	if err != nil {
		if isNotFound(err) {
			return 0, 0, ErrRatingNotFound
		}
		return 0, 0, err
	}
	if rating.UserID != userID {
		return 0, 0, ErrRatingAccessDenied
	}

	var average float64
	var count int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ratings := s.ratingRepo.WithTx(tx)
		if err := ratings.DeleteRating(rating.ID); err != nil {
			return err
		}
		// Average is exactly 0.0 once the last rating is gone, never null.
		average, count, err = ratings.GetAggregate(promptID)
		if err != nil {
			return err
		}
		return s.promptRepo.WithTx(tx).SetRatingAggregate(promptID, average, count)
	})
	if err != nil {
		return 0, 0, err
	}
	return average, count, nil
}

func (s *ratingService) Stats(promptID, callerID uint) (*models.RatingStats, error) {
	if _, err := s.promptRepo.GetPromptByID(promptID); err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	average, count, err := s.ratingRepo.GetAggregate(promptID)
	if err != nil {
		return nil, err
	}
	distribution, err := s.ratingRepo.GetDistribution(promptID)
	if err != nil {
		return nil, err
	}

	stats := &models.RatingStats{
		AverageRating: average,
		RatingCount:   count,
		Distribution:  distribution,
	}
	if callerID != 0 {
		if own, err := s.ratingRepo.GetRating(promptID, callerID); err == nil {
			stats.UserRating = own.Score
		} else if !isNotFound(err) {
			return nil, err
		}
	}
	return stats, nil
}
