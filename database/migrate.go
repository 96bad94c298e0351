package database

import (
	"marlink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migration for every model.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension present.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.GalleryItem{},
		&models.BlogPost{},
		&models.DownloadDoc{},
		&models.ScheduleFile{},
		&models.ExchangeRate{},
		&models.TariffPage{},
	)
}
