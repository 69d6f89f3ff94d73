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
	"ondernemercentraal.nl/pkg/queryparams"
)

type ITaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Task, int64, error)
	FindAllByCase(ctx context.Context, caseID uuid.UUID) ([]models.Task, error)
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository() ITaskRepository {
	return &TaskRepository{db: configs.GetDB()}
}

func NewTaskRepositoryTx(tx *gorm.DB) ITaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task == nil {
		return errors.New("geen taak om aan te maken")
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Task, int64, error) {
	var tasks []models.Task
	var totalCount int64

	query := r.db.WithContext(ctx).Model(&models.Task{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("TaskRepository.Count: DB-fout", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return tasks, 0, nil
	}

	allowedSortColumns := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"due_date":   "due_date",
		"status":     "status",
	}
	orderColumn, ok := allowedSortColumns[params.SortBy]
	if !ok {
		orderColumn = "due_date"
	}

	err := query.
		Preload("User").
		Order(orderColumn + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&tasks).Error
	if err != nil {
		configslog.Log.Error("TaskRepository.Find: DB-fout", zap.Error(err))
		return nil, totalCount, err
	}
	return tasks, totalCount, nil
}

func (r *TaskRepository) FindAllByCase(ctx context.Context, caseID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("due_date asc").
		Find(&tasks).Error
	if err != nil {
		configslog.Log.Error("TaskRepository.FindAllByCase: DB-fout", zap.String("caseID", caseID.String()), zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

var _ ITaskRepository = (*TaskRepository)(nil)
