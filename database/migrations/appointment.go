package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

func MigrateAppointmentsTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Appointment{})
}
