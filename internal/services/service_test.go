package services

import (
	"testing"

	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every service over one in-memory SQLite database
type testEnv struct {
	db        *gorm.DB
	users     UserService
	prompts   PromptService
	ratings   RatingService
	likes     LikeService
	bookmarks BookmarkService
	follows   FollowService
	feed      FeedService
	notifs    NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across queries.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Prompt{},
		&models.Rating{},
		&models.Like{},
		&models.Bookmark{},
		&models.BookmarkFolder{},
		&models.Follow{},
		&models.Notification{},
	))

	userRepo := repositories.NewPostgresUserRepository(db)
	promptRepo := repositories.NewPostgresPromptRepository(db)
	ratingRepo := repositories.NewPostgresRatingRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db)
	folderRepo := repositories.NewPostgresBookmarkFolderRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notifRepo := repositories.NewPostgresNotificationRepository(db)

	notifs := NewNotificationService(db, notifRepo, zap.NewNop())
	return &testEnv{
		db:        db,
		users:     NewUserService(db, userRepo),
		prompts:   NewPromptService(db, promptRepo, userRepo, followRepo, ratingRepo, likeRepo, bookmarkRepo, folderRepo, notifRepo, notifs),
		ratings:   NewRatingService(db, ratingRepo, promptRepo, userRepo, notifs),
		likes:     NewLikeService(db, likeRepo, promptRepo, userRepo, notifs),
		bookmarks: NewBookmarkService(db, bookmarkRepo, folderRepo, promptRepo, userRepo, notifs),
		follows:   NewFollowService(db, followRepo, userRepo, notifs),
		feed:      NewFeedService(followRepo, promptRepo, userRepo, likeRepo, ratingRepo, bookmarkRepo),
		notifs:    notifs,
	}
}

func (e *testEnv) createUser(t *testing.T, nickname string) *models.User {
	t.Helper()
	user := &models.User{Email: nickname + "@example.com", Nickname: nickname}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createPrompt(t *testing.T, authorID uint, title string) *models.Prompt {
	t.Helper()
	prompt := &models.Prompt{
		AuthorID: authorID,
		Title:    title,
		Content:  "You are a helpful assistant.",
		Category: "general",
		IsPublic: true,
	}
	require.NoError(t, e.db.Create(prompt).Error)
	return prompt
}

func (e *testEnv) reloadPrompt(t *testing.T, id uint) *models.Prompt {
	t.Helper()
	var prompt models.Prompt
	require.NoError(t, e.db.First(&prompt, id).Error)
	return &prompt
}

func (e *testEnv) reloadUser(t *testing.T, id uint) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, e.db.First(&user, id).Error)
	return &user
}

func (e *testEnv) notificationsFor(t *testing.T, recipientID uint) []models.Notification {
	t.Helper()
	var rows []models.Notification
	require.NoError(t, e.db.Where("recipient_id = ?", recipientID).Order("id").Find(&rows).Error)
	return rows
}
