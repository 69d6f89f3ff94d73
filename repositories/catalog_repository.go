package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

// ICatalogRepository looks up the seeded reference data: appointment types,
// track types, partner organizations and the product catalogue.
type ICatalogRepository interface {
	FindAppointmentTypeByName(ctx context.Context, name string) (*models.AppointmentType, error)
	FindTrackTypeByName(ctx context.Context, name string) (*models.TrackType, error)
	FindPartnerOrganizationByName(ctx context.Context, name string) (*models.PartnerOrganization, error)
	FindProductByName(ctx context.Context, name string) (*models.Product, error)
	FindProductCategoryByName(ctx context.Context, name string) (*models.ProductCategory, error)
	FindAllPartnerOrganizations(ctx context.Context) ([]models.PartnerOrganization, error)
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository() ICatalogRepository {
	return &CatalogRepository{db: configs.GetDB()}
}

func NewCatalogRepositoryTx(tx *gorm.DB) ICatalogRepository {
	return &CatalogRepository{db: tx}
}

func (r *CatalogRepository) firstByName(dest any, name string, query *gorm.DB) error {
	err := query.Where("name = ?", name).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		configslog.Log.Error("CatalogRepository: DB-fout bij naam-lookup", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func (r *CatalogRepository) FindAppointmentTypeByName(ctx context.Context, name string) (*models.AppointmentType, error) {
	var appointmentType models.AppointmentType
	if err := r.firstByName(&appointmentType, name, r.db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return &appointmentType, nil
}

func (r *CatalogRepository) FindTrackTypeByName(ctx context.Context, name string) (*models.TrackType, error) {
	var trackType models.TrackType
	if err := r.firstByName(&trackType, name, r.db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return &trackType, nil
}

func (r *CatalogRepository) FindPartnerOrganizationByName(ctx context.Context, name string) (*models.PartnerOrganization, error) {
	var organization models.PartnerOrganization
	if err := r.firstByName(&organization, name, r.db.WithContext(ctx).Preload("Products")); err != nil {
		return nil, err
	}
	return &organization, nil
}

func (r *CatalogRepository) FindProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.firstByName(&product, name, r.db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) FindProductCategoryByName(ctx context.Context, name string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	if err := r.firstByName(&category, name, r.db.WithContext(ctx).Preload("Products")); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) FindAllPartnerOrganizations(ctx context.Context) ([]models.PartnerOrganization, error) {
	var organizations []models.PartnerOrganization
	err := r.db.WithContext(ctx).Preload("Products").Order("name asc").Find(&organizations).Error
	if err != nil {
		configslog.Log.Error("CatalogRepository.FindAllPartnerOrganizations: DB-fout", zap.Error(err))
		return nil, err
	}
	return organizations, nil
}

var _ ICatalogRepository = (*CatalogRepository)(nil)
