package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/queryparams"
)

// IAppointmentRepository is the data access contract for appointments.
type IAppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	// FindByIDLocked takes a FOR UPDATE lock on the appointment row.
	FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	FindAllByCasePaginated(ctx context.Context, caseID uuid.UUID, params queryparams.ListParams) ([]models.Appointment, int64, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, appointment *models.Appointment) error
}

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configs.GetDB()}
}

func NewAppointmentRepositoryTx(tx *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{db: tx}
}

func (r *AppointmentRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("AppointmentType").
		Preload("PartnerOrganization.Products").
		Preload("Track.PartnerOrganization.Products").
		Preload("Case.Client").
		Preload("Case.Advisor")
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("geen afspraak om aan te maken")
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

func (r *AppointmentRepository) findByID(ctx context.Context, id uuid.UUID, lock bool) (*models.Appointment, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var appointment models.Appointment
	err := r.preloaded(db).First(&appointment, "appointments.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: DB-fout", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.findByID(ctx, id, false)
}

func (r *AppointmentRepository) FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return r.findByID(ctx, id, true)
}

func (r *AppointmentRepository) FindAllByCasePaginated(ctx context.Context, caseID uuid.UUID, params queryparams.ListParams) ([]models.Appointment, int64, error) {
	var appointments []models.Appointment
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("case_id = ?", caseID)
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("AppointmentRepository.Count: DB-fout", zap.String("caseID", caseID.String()), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return appointments, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"start_time": "start_time",
		"status":     "status",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "start_time"
	}

	err := r.preloaded(query).
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.Find: DB-fout", zap.String("caseID", caseID.String()), zap.Error(err))
		return nil, totalCount, err
	}
	return appointments, totalCount, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == uuid.Nil {
		return errors.New("te bijwerken afspraak is niet geldig")
	}
	// Associations are read through preloads only; writes go through the
	// foreign key columns.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(appointment).Error
}

func (r *AppointmentRepository) Delete(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == uuid.Nil {
		return errors.New("te verwijderen afspraak is niet geldig")
	}
	return r.db.WithContext(ctx).Delete(appointment).Error
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
