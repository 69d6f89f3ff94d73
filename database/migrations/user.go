package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateUsersTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}
