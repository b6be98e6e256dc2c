package repositories

import (
	"errors"

	"takaearn_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepository interface {
	Create(db *gorm.DB, submission *models.Submission) error
	FindByID(db *gorm.DB, id string) (*models.Submission, error)
	// FindByIDForUpdate берет сабмишен под блокировку строки на время ревью.
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Submission, error)
	// FindLatestByUserAndTask возвращает самый свежий сабмишен пары
	// (user, task) - вход CooldownGuard. nil без ошибки, если истории нет.
	FindLatestByUserAndTask(db *gorm.DB, userID, taskID string) (*models.Submission, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Submission, error)
	FindByStatus(db *gorm.DB, status models.SubmissionStatus) ([]models.Submission, error)
	FindAll(db *gorm.DB) ([]models.Submission, error)
	Update(db *gorm.DB, submission *models.Submission) error
}

type SubmissionRepositoryImpl struct{}

func NewSubmissionRepository() SubmissionRepository {
	return &SubmissionRepositoryImpl{}
}

func (r *SubmissionRepositoryImpl) Create(db *gorm.DB, submission *models.Submission) error {
	return db.Create(submission).Error
}

func (r *SubmissionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Submission, error) {
	var submission models.Submission
	err := db.First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id string) (*models.Submission, error) {
	var submission models.Submission
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepositoryImpl) FindLatestByUserAndTask(db *gorm.DB, userID, taskID string) (*models.Submission, error) {
	var submission models.Submission
	err := db.Where("user_id = ? AND task_id = ?", userID, taskID).
		Order("created_at DESC").
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

// FindByUser - история сабмишенов пользователя, новые сверху
func (r *SubmissionRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) FindByStatus(db *gorm.DB, status models.SubmissionStatus) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Where("status = ?", status).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) FindAll(db *gorm.DB) ([]models.Submission, error) {
	var submissions []models.Submission
	err := db.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) Update(db *gorm.DB, submission *models.Submission) error {
	return db.Save(submission).Error
}
