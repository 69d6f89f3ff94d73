package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateAvailabilityTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AvailabilityDefinition{},
		&models.CapacitySlot{},
	)
}
