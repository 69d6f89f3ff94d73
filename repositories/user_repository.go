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

type IUserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository() IUserRepository {
	return &UserRepository{db: configs.GetDB()}
}

func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("PartnerOrganization").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: DB-fout", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

var _ IUserRepository = (*UserRepository)(nil)
