package services

import (
	"encoding/json"

	"takaearn_backend/internal/models"
	"takaearn_backend/internal/repositories"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaskService interface {
	ListActive(db *gorm.DB) ([]dto.TaskResponse, error)
	GetByID(db *gorm.DB, id string) (*dto.TaskResponse, error)
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *TaskServiceImpl) ListActive(db *gorm.DB) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, *taskToResponse(&tasks[i]))
	}
	return responses, nil
}

func (s *TaskServiceImpl) GetByID(db *gorm.DB, id string) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return taskToResponse(task), nil
}

func taskToResponse(task *models.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Rate:         task.Rate,
		RateType:     task.RateType,
		Limit:        task.Limit,
		Completed:    task.Completed,
		Requirements: json.RawMessage(task.Requirements),
	}
}
