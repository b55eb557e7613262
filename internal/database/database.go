package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/config"
)

// New creates a new database connection. The postgres driver serves
// deployments; sqlite keeps local development and tests self-contained.
func New(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite database: %w", err)
		}
		log.Printf("[Database] opened sqlite database %s", cfg.DBName)
		return db, nil

	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)

		// Log connection target (without password)
		log.Printf("[Database] connecting to postgres at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("error getting database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)

		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("error connecting to the database: %w", err)
		}

		log.Printf("[Database] successfully connected to postgres")
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}
