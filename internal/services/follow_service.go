package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService maintains the directed follow graph. Both user counters move
// in the same transaction as the edge, so they always equal the edge
// cardinality and are never recomputed lazily.
type FollowService interface {
	Follow(followerID, followingID uint) error
	Unfollow(followerID, followingID uint) error
	Status(requesterID, targetID uint) (*models.FollowStatus, error)
	ListFollowers(userID, requesterID uint, page, limit int) ([]models.FollowUserEntry, int64, error)
	ListFollowing(userID, requesterID uint, page, limit int) ([]models.FollowUserEntry, int64, error)
}

type followService struct {
	db         *gorm.DB
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	notifier   NotificationService
}

// NewFollowService creates a new FollowService
func NewFollowService(
	db *gorm.DB,
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	notifier NotificationService,
) FollowService {
	return &followService{db: db, followRepo: followRepo, userRepo: userRepo, notifier: notifier}
}

func (s *followService) Follow(followerID, followingID uint) error {
	if err := checkSelfInteraction(interactionFollow, followerID, followingID); err != nil {
		return err
	}

	follower, err := s.userRepo.GetUserByID(followerID)
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.userRepo.GetUserByID(followingID); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return err
	}

	exists, err := s.followRepo.IsFollowing(followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyFollowing
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		edge := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := s.followRepo.WithTx(tx).CreateFollow(edge); err != nil {
			return translateDuplicate(err, ErrAlreadyFollowing)
		}
		if err := users.AdjustFollowingCount(followerID, 1); err != nil {
			return err
		}
		if err := users.AdjustFollowerCount(followingID, 1); err != nil {
			return err
		}
		return s.notifier.NotifyUserFollowed(tx, follower, followingID)
	})
}

func (s *followService) Unfollow(followerID, followingID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		removed, err := s.followRepo.WithTx(tx).DeleteFollow(followerID, followingID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrNotFollowing
		}
		users := s.userRepo.WithTx(tx)
		if err := users.AdjustFollowingCount(followerID, -1); err != nil {
			return err
		}
		return users.AdjustFollowerCount(followingID, -1)
	})
}

// Status runs two independent existence checks and has no side effects
func (s *followService) Status(requesterID, targetID uint) (*models.FollowStatus, error) {
	isFollowing, err := s.followRepo.IsFollowing(requesterID, targetID)
	if err != nil {
		return nil, err
	}
	isFollowedBy, err := s.followRepo.IsFollowing(targetID, requesterID)
	if err != nil {
		return nil, err
	}
	return &models.FollowStatus{IsFollowing: isFollowing, IsFollowedBy: isFollowedBy}, nil
}

func (s *followService) ListFollowers(userID, requesterID uint, page, limit int) ([]models.FollowUserEntry, int64, error) {
	_, limit, offset := normalizePage(page, limit, 20)
	users, total, err := s.followRepo.ListFollowers(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	entries, err := s.annotate(users, requesterID)
	return entries, total, err
}

func (s *followService) ListFollowing(userID, requesterID uint, page, limit int) ([]models.FollowUserEntry, int64, error) {
	_, limit, offset := normalizePage(page, limit, 20)
	users, total, err := s.followRepo.ListFollowing(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	entries, err := s.annotate(users, requesterID)
	return entries, total, err
}

// annotate marks each listed user with whether the requester follows them.
// The flag is about the requester's own edge, independent of the listing's
// direction.
func (s *followService) annotate(users []models.User, requesterID uint) ([]models.FollowUserEntry, error) {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followingSet := make(map[uint]bool)
	if requesterID != 0 {
		var err error
		followingSet, err = s.followRepo.GetFollowingSet(requesterID, ids)
		if err != nil {
			return nil, err
		}
	}
	entries := make([]models.FollowUserEntry, len(users))
	for i, u := range users {
		entries[i] = models.FollowUserEntry{
			UserCompact:   u.ToCompact(),
			FollowerCount: u.FollowerCount,
			IsFollowing:   followingSet[u.ID],
		}
	}
	return entries, nil
}
