package repositories

import (
	"errors"

	"takaearn_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository - доступ к каталогу заданий. Для леджера каталог read-only;
// Create нужен только сидингу и тестам.
type TaskRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Task, error)
	FindActive(db *gorm.DB) ([]models.Task, error)
	Create(db *gorm.DB, task *models.Task) error
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	err := db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindActive(db *gorm.DB) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}
