package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateTracksTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Track{})
}
