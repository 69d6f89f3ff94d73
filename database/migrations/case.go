package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateCasesTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Case{})
}
