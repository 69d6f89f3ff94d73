package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

const systemUserEmail = "systeem@ondernemercentraal.nl"

// SeedSystemUser guarantees a beheerder account exists for provisioning and
// support work.
func SeedSystemUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", systemUserEmail).First(&existing).Error
	if err == nil {
		configslog.SLog.Debug("Systeemgebruiker bestaat al, aanmaken overgeslagen.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := models.User{
		Name:     "Systeem",
		Email:    systemUserEmail,
		RoleName: configs.RoleBeheerder,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Systeemgebruiker aangemaakt (%s).", systemUserEmail)
	return nil
}
