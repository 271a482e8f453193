package database

import (
	"gorm.io/gorm"

	"modelhub-server/internal/infrastructure/database/entities"
)

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Model{},
		&entities.User{},
		&entities.Tool{},
		&entities.Tutorial{},
		&entities.Newsletter{},
		&entities.Subscription{},
	)
}
