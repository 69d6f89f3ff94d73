package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateTasksTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Task{})
}
