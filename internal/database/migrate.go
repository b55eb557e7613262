package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/tinybites/backend/internal/model"
)

// Migrate brings the schema up to date. On postgres the vector extension
// is created first so the favorites embedding column can be declared.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to create vector extension: %w", err)
		}
	}

	if err := db.AutoMigrate(
		&model.EatingLog{},
		&model.BabyProfile{},
		&model.FavoriteRecipe{},
		&model.Subscriber{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Printf("[Database] migrations applied")
	return nil
}
