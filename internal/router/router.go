package router

import (
	"github.com/promptdeck/backend/internal/handlers"
	appMiddleware "github.com/promptdeck/backend/internal/middleware"
	"github.com/promptdeck/backend/internal/models"
	"github.com/promptdeck/backend/internal/repositories"
	"github.com/promptdeck/backend/internal/services"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestID())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Prompt{},
		&models.Rating{},
		&models.Like{},
		&models.Bookmark{},
		&models.BookmarkFolder{},
		&models.Follow{},
		&models.Notification{},
	); err != nil {
		return err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	promptRepo := repositories.NewPostgresPromptRepository(db)
	ratingRepo := repositories.NewPostgresRatingRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db)
	folderRepo := repositories.NewPostgresBookmarkFolderRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	// --- Services ---
	notificationService := services.NewNotificationService(db, notificationRepo, logger)
	userService := services.NewUserService(db, userRepo)
	promptService := services.NewPromptService(db, promptRepo, userRepo, followRepo,
		ratingRepo, likeRepo, bookmarkRepo, folderRepo, notificationRepo, notificationService)
	ratingService := services.NewRatingService(db, ratingRepo, promptRepo, userRepo, notificationService)
	likeService := services.NewLikeService(db, likeRepo, promptRepo, userRepo, notificationService)
	bookmarkService := services.NewBookmarkService(db, bookmarkRepo, folderRepo, promptRepo, userRepo, notificationService)
	followService := services.NewFollowService(db, followRepo, userRepo, notificationService)
	feedService := services.NewFeedService(followRepo, promptRepo, userRepo, likeRepo, ratingRepo, bookmarkRepo)

	// --- Routes ---
	api := e.Group("/api/v1")
	api.Use(appMiddleware.ResolvedIdentity())

	handlers.NewUserHandler(userService).RegisterUserRoutes(api)
	handlers.NewPromptHandler(promptService).RegisterPromptRoutes(api)
	handlers.NewRatingHandler(ratingService).RegisterRatingRoutes(api)
	handlers.NewLikeHandler(likeService).RegisterLikeRoutes(api)
	handlers.NewBookmarkHandler(bookmarkService).RegisterBookmarkRoutes(api)
	handlers.NewFollowHandler(followService).RegisterFollowRoutes(api)
	handlers.NewFeedHandler(feedService).RegisterFeedRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	notificationHandler.RegisterInternalRoutes(e.Group(""))

	logger.Info("routes configured")
	return nil
}
