package database

import (
	"github.com/EasWay/bina-mobile/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model. Shared between
// server startup and the test harness.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Sale{},
		&models.Customer{},
	)
}
