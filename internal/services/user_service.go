package services

import (
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"gorm.io/gorm"
)

// UserService owns the user directory. Follower counters on the records are
// mutated only by the follow service; users are never deleted here.
type UserService interface {
	Register(req *models.CreateUserRequest) (*models.User, error)
	Get(userID uint) (*models.User, error)
	Search(query string, page, limit int) ([]models.User, int64, error)
}

type userService struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB, userRepo repositories.UserRepository) UserService {
	return &userService{db: db, userRepo: userRepo}
}

func (s *userService) Register(req *models.CreateUserRequest) (*models.User, error) {
	if _, err := s.userRepo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByNickname(req.Nickname); err == nil {
		return nil, ErrNicknameTaken
	} else if !isNotFound(err) {
		return nil, err
	}

	user := &models.User{Email: req.Email, Nickname: req.Nickname, Bio: req.Bio}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, translateDuplicate(err, ErrEmailTaken)
	}
	return user, nil
}

func (s *userService) Get(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Search(query string, page, limit int) ([]models.User, int64, error) {
	_, limit, offset := normalizePage(page, limit, 20)
	return s.userRepo.SearchUsers(query, offset, limit)
}
