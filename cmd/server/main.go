package main

import (
	"log"

	"github.com/promptdeck/backend/internal/router"
	"github.com/promptdeck/backend/pkg/config"
	"github.com/promptdeck/backend/pkg/logger"
	"github.com/promptdeck/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, zapLogger); err != nil {
		zapLogger.Fatal("failed to set up routes", zap.Error(err))
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
