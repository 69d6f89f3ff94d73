package services

import (
	"context"

	"github.com/google/uuid"

	"ondernemercentraal.nl/models"
	"ondernemercentraal.nl/pkg/queryparams"
	"ondernemercentraal.nl/repositories"
)

// ITaskService exposes the follow-up task lists. Tasks are created by other
// services (completion approval); this service only reads them.
type ITaskService interface {
	GetTasks(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetTasksForCase(ctx context.Context, caseID uuid.UUID) ([]models.Task, error)
}

type TaskService struct {
	repo repositories.ITaskRepository
}

func NewTaskService() ITaskService {
	return &TaskService{repo: repositories.NewTaskRepository()}
}

func (s *TaskService) GetTasks(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	tasks, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: tasks,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

func (s *TaskService) GetTasksForCase(ctx context.Context, caseID uuid.UUID) ([]models.Task, error) {
	return s.repo.FindAllByCase(ctx, caseID)
}

var _ ITaskService = (*TaskService)(nil)
