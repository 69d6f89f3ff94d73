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
)

// ITrackRepository is the data access contract for tracks.
type ITrackRepository interface {
	Create(ctx context.Context, track *models.Track) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Track, error)
	// FindByIDLocked takes a FOR UPDATE lock on the track row so status
	// transitions and approval writes serialize.
	FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Track, error)
	FindAllByCase(ctx context.Context, caseID uuid.UUID) ([]models.Track, error)
	Update(ctx context.Context, track *models.Track) error
}

type TrackRepository struct {
	db *gorm.DB
}

func NewTrackRepository() ITrackRepository {
	return &TrackRepository{db: configs.GetDB()}
}

func NewTrackRepositoryTx(tx *gorm.DB) ITrackRepository {
	return &TrackRepository{db: tx}
}

func (r *TrackRepository) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("TrackType").
		Preload("PartnerOrganization.Products").
		Preload("Product").
		Preload("ProductCategory").
		Preload("Appointments.AppointmentType").
		Preload("Case.Client").
		Preload("Case.Advisor")
}

func (r *TrackRepository) Create(ctx context.Context, track *models.Track) error {
	if track == nil {
		return errors.New("geen traject om aan te maken")
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(track).Error
}

func (r *TrackRepository) findByID(ctx context.Context, id uuid.UUID, lock bool) (*models.Track, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var track models.Track
	err := r.preloaded(db).First(&track, "tracks.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TrackRepository.FindByID: DB-fout", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &track, nil
}

func (r *TrackRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Track, error) {
	return r.findByID(ctx, id, false)
}

func (r *TrackRepository) FindByIDLocked(ctx context.Context, id uuid.UUID) (*models.Track, error) {
	return r.findByID(ctx, id, true)
}

func (r *TrackRepository) FindAllByCase(ctx context.Context, caseID uuid.UUID) ([]models.Track, error) {
	var tracks []models.Track
	err := r.preloaded(r.db.WithContext(ctx)).
		Where("case_id = ?", caseID).
		Order("created_at desc").
		Find(&tracks).Error
	if err != nil {
		configslog.Log.Error("TrackRepository.FindAllByCase: DB-fout", zap.String("caseID", caseID.String()), zap.Error(err))
		return nil, err
	}
	return tracks, nil
}

func (r *TrackRepository) Update(ctx context.Context, track *models.Track) error {
	if track == nil || track.ID == uuid.Nil {
		return errors.New("te bijwerken traject is niet geldig")
	}
	// Associations are read through preloads only; writes go through the
	// foreign key columns.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(track).Error
}

var _ ITrackRepository = (*TrackRepository)(nil)
