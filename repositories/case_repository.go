package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ondernemercentraal.nl/configs"
	"ondernemercentraal.nl/configs/configslog"
	"ondernemercentraal.nl/models"
)

type ICaseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Case, error)
}

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository() ICaseRepository {
	return &CaseRepository{db: configs.GetDB()}
}

func NewCaseRepositoryTx(tx *gorm.DB) ICaseRepository {
	return &CaseRepository{db: tx}
}

func (r *CaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var dossier models.Case
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Advisor").
		First(&dossier, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CaseRepository.FindByID: DB-fout", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &dossier, nil
}

var _ ICaseRepository = (*CaseRepository)(nil)
