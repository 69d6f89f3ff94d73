package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

func SeedTrackTypes(db *gorm.DB) error {
	trackTypes := []models.TrackType{
		{
			Name:        models.TrackTypeOndernemersdienstverlening,
			Description: "Ondersteuning van ondernemers door Ondernemer Centraal en partners.",
		},
		{
			Name:                        models.TrackTypeSHVO,
			Description:                 "Schuldhulpverlening voor ondernemers.",
			PartnerOrganizationRequired: true,
		},
	}

	for _, trackType := range trackTypes {
		var existing models.TrackType
		err := db.Where("name = ?", trackType.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&trackType).Error; err != nil {
			return err
		}
		configslog.SLog.Infof("Trajecttype '%s' aangemaakt.", trackType.Name)
	}
	return nil
}
