package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

// SeedDefaultAvailability creates the single default availability definition.
// Slot computation treats its absence as data corruption, so this seeder must
// run before the service answers slot queries.
func SeedDefaultAvailability(db *gorm.DB) error {
	var existing models.AvailabilityDefinition
	err := db.Where("is_default = ?", true).First(&existing).Error
	if err == nil {
		configslog.SLog.Debug("Standaard beschikbaarheidsdefinitie bestaat al, aanmaken overgeslagen.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	definition := models.AvailabilityDefinition{
		Default: true,
		Slots: []models.CapacitySlot{
			{HourStart: 9, HourEnd: 12, Capacity: 2},
			{HourStart: 13, HourEnd: 17, Capacity: 2},
		},
	}
	if err := db.Create(&definition).Error; err != nil {
		return err
	}
	configslog.SLog.Info("Standaard beschikbaarheidsdefinitie aangemaakt (09-12 en 13-17, capaciteit 2).")
	return nil
}
