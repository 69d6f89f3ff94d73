package seeders

import (
	"errors"

	"gorm.io/gorm"

	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

// SeedProducts creates the product categories and products of the support
// catalogue. The "Toekomstgesprek" and "SHVO intake" products gate which
// partner organizations may run appointments of those types.
func SeedProducts(db *gorm.DB) error {
	catalogue := map[string][]string{
		"Gesprekken":      {"Toekomstgesprek", "SHVO intake"},
		"Coaching":        {"Ondernemerscoaching", "Financiële coaching"},
		"Financiën":       {"Boekhoudondersteuning", "Kredietadvies"},
		"Juridisch":       {"Juridisch advies"},
		"Personele zaken": {"HR-advies"},
		"Bedrijfsvoering": {"Bedrijfsscan", "Marketingadvies"},
	}

	for categoryName, productNames := range catalogue {
		category, err := ensureProductCategory(db, categoryName)
		if err != nil {
			return err
		}
		for _, productName := range productNames {
			if err := ensureProduct(db, productName, category); err != nil {
				return err
			}
		}
	}
	return nil
}

func ensureProductCategory(db *gorm.DB, name string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	err := db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.ProductCategory{Name: name}
	if err := db.Create(&category).Error; err != nil {
		return nil, err
	}
	configslog.SLog.Infof("Productcategorie '%s' aangemaakt.", name)
	return &category, nil
}

func ensureProduct(db *gorm.DB, name string, category *models.ProductCategory) error {
	var existing models.Product
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	categoryID := category.ID
	product := models.Product{Name: name, ProductCategoryID: &categoryID}
	if err := db.Create(&product).Error; err != nil {
		return err
	}
	configslog.SLog.Infof("Product '%s' aangemaakt (categorie '%s').", name, category.Name)
	return nil
}
