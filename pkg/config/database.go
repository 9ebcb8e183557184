package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Postgres *gorm.DB
}

// InitDB initializes and returns the database connection
func InitDB() (*DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := Load()
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	postgresDB, err := initPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &DB{Postgres: postgresDB}, nil
}

// initPostgres initializes the PostgreSQL database connection using GORM.
// TranslateError maps dialect duplicate-key failures onto gorm.ErrDuplicatedKey
// so the service layer can turn lost uniqueness races into conflicts.
func initPostgres(connStr string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Postgres == nil {
		return
	}
	sqlDB, err := db.Postgres.DB()
	if err != nil {
		log.Printf("Error getting SQL DB from GORM: %v\n", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing PostgreSQL connection: %v\n", err)
	}
}
