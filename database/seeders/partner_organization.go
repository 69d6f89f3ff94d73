package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

// SeedPartnerOrganizations creates the partner organizations with their
// product links. Runs after SeedProducts.
func SeedPartnerOrganizations(db *gorm.DB) error {
	organizations := []struct {
		name             string
		email            string
		descriptionShort string
		productNames     []string
	}{
		{
			name:             "Over Rood",
			email:            "info@overrood.nl",
			descriptionShort: "Begeleiding van ondernemers bij financiële problemen.",
			productNames:     []string{"Toekomstgesprek", "SHVO intake", "Boekhoudondersteuning"},
		},
		{
			name:             "Ondernemersklankbord",
			email:            "contact@ondernemersklankbord.nl",
			descriptionShort: "Klankbord en coaching door oud-ondernemers.",
			productNames:     []string{"Toekomstgesprek", "Ondernemerscoaching"},
		},
		{
			name:             "Qredits",
			email:            "advies@qredits.nl",
			descriptionShort: "Microfinanciering en kredietadvies.",
			productNames:     []string{"Kredietadvies", "Bedrijfsscan"},
		},
	}

	for _, organization := range organizations {
		var existing models.PartnerOrganization
		err := db.Where("name = ?", organization.name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var products []models.Product
		if err := db.Where("name IN ?", organization.productNames).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(organization.productNames) {
			return errors.New("niet alle producten voor partnerorganisatie '" + organization.name + "' zijn aanwezig")
		}

		row := models.PartnerOrganization{
			Name:             organization.name,
			Email:            organization.email,
			DescriptionShort: organization.descriptionShort,
			Products:         products,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		configslog.SLog.Infof("Partnerorganisatie '%s' aangemaakt.", organization.name)
	}
	return nil
}
