package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateClientsTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Client{})
}
