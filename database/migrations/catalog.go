package migrations

import (
	"gorm.io/gorm"

	"ondernemercentraal.nl/models"
)

// MigrateCatalogTables migrates the seeded lookup tables. ProductCategory
// precedes Product, Product precedes PartnerOrganization (join table).
func MigrateCatalogTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TrackType{},
		&models.AppointmentType{},
		&models.ProductCategory{},
		&models.Product{},
		&models.PartnerOrganization{},
	)
}
