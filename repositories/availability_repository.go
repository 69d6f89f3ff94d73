package repositories

import (
	"context"
	"errors"
	"time"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/apperrors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityData is everything slot computations need for a date range:
// the appointments starting in it, the dated capacity overrides, and the
// single default definition.
type AvailabilityData struct {
	Appointments []models.Appointment
	Dated        []models.AvailabilityDefinition
	Default      models.AvailabilityDefinition
}

// IAvailabilityRepository loads and mutates the availability aggregate.
type IAvailabilityRepository interface {
	// GetAvailabilityData returns the appointments whose start_time falls in
	// [startDate, endDate+1d), the dated definitions in [startDate, endDate]
	// and the default definition. A missing default definition is a
	// provisioning bug and surfaces as an invariant violation.
	GetAvailabilityData(ctx context.Context, startDate, endDate time.Time) (*AvailabilityData, error)
	// GetAvailabilityDataLocked is GetAvailabilityData with FOR UPDATE row
	// locks on the appointment rows, for use inside a booking transaction so
	// concurrent bookings serialize on the overlapping set.
	GetAvailabilityDataLocked(ctx context.Context, startDate, endDate time.Time) (*AvailabilityData, error)
	FindDatedByDate(ctx context.Context, date time.Time) (*models.AvailabilityDefinition, error)
	CreateDefinition(ctx context.Context, definition *models.AvailabilityDefinition) error
	SaveDefinition(ctx context.Context, definition *models.AvailabilityDefinition) error
}

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository() IAvailabilityRepository {
	return &AvailabilityRepository{db: configs.GetDB()}
}

// NewAvailabilityRepositoryTx binds the repository to an open transaction.
func NewAvailabilityRepositoryTx(tx *gorm.DB) IAvailabilityRepository {
	return &AvailabilityRepository{db: tx}
}

func (r *AvailabilityRepository) getAvailabilityData(ctx context.Context, startDate, endDate time.Time, lock bool) (*AvailabilityData, error) {
	db := r.db.WithContext(ctx)

	appointmentQuery := db.
		Preload("AppointmentType").
		Where("start_time >= ? AND start_time < ?", startDate, endDate.AddDate(0, 0, 1))
	if lock {
		appointmentQuery = appointmentQuery.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var appointments []models.Appointment
	if err := appointmentQuery.Find(&appointments).Error; err != nil {
		configslog.Log.Error("AvailabilityRepository: appointments ophalen mislukt", zap.Error(err))
		return nil, err
	}

	// The date column is a plain calendar date; compare it as one to avoid
	// timezone-dependent casts.
	var dated []models.AvailabilityDefinition
	err := db.Preload("Slots").
		Where("is_default = ? AND date BETWEEN ? AND ?", false, startDate.Format("2006-01-02"), endDate.Format("2006-01-02")).
		Find(&dated).Error
	if err != nil {
		configslog.Log.Error("AvailabilityRepository: gedateerde definities ophalen mislukt", zap.Error(err))
		return nil, err
	}

	var defaultDefinition models.AvailabilityDefinition
	err = db.Preload("Slots").Where("is_default = ?", true).First(&defaultDefinition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Invariant("no default availability definition exists; the database was not seeded")
		}
		configslog.Log.Error("AvailabilityRepository: standaarddefinitie ophalen mislukt", zap.Error(err))
		return nil, err
	}

	return &AvailabilityData{
		Appointments: appointments,
		Dated:        dated,
		Default:      defaultDefinition,
	}, nil
}

func (r *AvailabilityRepository) GetAvailabilityData(ctx context.Context, startDate, endDate time.Time) (*AvailabilityData, error) {
	return r.getAvailabilityData(ctx, startDate, endDate, false)
}

func (r *AvailabilityRepository) GetAvailabilityDataLocked(ctx context.Context, startDate, endDate time.Time) (*AvailabilityData, error) {
	return r.getAvailabilityData(ctx, startDate, endDate, true)
}

func (r *AvailabilityRepository) FindDatedByDate(ctx context.Context, date time.Time) (*models.AvailabilityDefinition, error) {
	var definition models.AvailabilityDefinition
	err := r.db.WithContext(ctx).
		Preload("Slots").
		Where("is_default = ? AND date = ?", false, date.Format("2006-01-02")).
		First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AvailabilityRepository.FindDatedByDate: DB-fout", zap.Time("date", date), zap.Error(err))
		return nil, err
	}
	return &definition, nil
}

func (r *AvailabilityRepository) CreateDefinition(ctx context.Context, definition *models.AvailabilityDefinition) error {
	return r.db.WithContext(ctx).Create(definition).Error
}

func (r *AvailabilityRepository) SaveDefinition(ctx context.Context, definition *models.AvailabilityDefinition) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(definition).Error
}

var _ IAvailabilityRepository = (*AvailabilityRepository)(nil)
