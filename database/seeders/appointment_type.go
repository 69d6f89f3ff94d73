package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

func SeedAppointmentTypes(db *gorm.DB) error {
	appointmentTypes := []models.AppointmentType{
		{
			Name:        models.AppointmentTypeCheckgesprek,
			Description: "Telefonisch kennismakingsgesprek met een adviseur van Ondernemer Centraal.",
		},
		{
			Name:        models.AppointmentTypeToekomstgesprek,
			Description: "Gesprek over de toekomst van de onderneming, uitgevoerd door een partner.",
		},
		{
			Name:        models.AppointmentTypeSHVOIntake,
			Description: "Intakegesprek voor schuldhulpverlening aan ondernemers.",
		},
	}

	for _, appointmentType := range appointmentTypes {
		var existing models.AppointmentType
		err := db.Where("name = ?", appointmentType.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&appointmentType).Error; err != nil {
			return err
		}
		configslog.SLog.Infof("Gesprekstype '%s' aangemaakt.", appointmentType.Name)
	}
	return nil
}
