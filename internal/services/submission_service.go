package services

import (
	"time"

	"takaearn_backend/internal/config"
	"takaearn_backend/internal/logger"
	"takaearn_backend/internal/models"
	"takaearn_backend/internal/repositories"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SubmissionService interface {
	// RemainingCooldown возвращает остаток окна до следующей разрешенной
	// отправки по заданию. 0 - отправка разрешена.
	RemainingCooldown(db *gorm.DB, userID, taskID string) (time.Duration, error)
	Submit(db *gorm.DB, userID string, req *dto.SubmitRequest) (*dto.SubmissionResponse, error)
	ListByUser(db *gorm.DB, userID string) ([]dto.SubmissionResponse, error)
}

type SubmissionServiceImpl struct {
	submissionRepo  repositories.SubmissionRepository
	transactionRepo repositories.TransactionRepository
	balanceRepo     repositories.BalanceRepository
	taskRepo        repositories.TaskRepository
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	transactionRepo repositories.TransactionRepository,
	balanceRepo repositories.BalanceRepository,
	taskRepo repositories.TaskRepository,
) SubmissionService {
	return &SubmissionServiceImpl{
		submissionRepo:  submissionRepo,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		taskRepo:        taskRepo,
	}
}

// remainingCooldown - чистая арифметика окна. Окно отсчитывается от момента
// последней отправки независимо от ее итогового статуса.
func remainingCooldown(window time.Duration, lastSubmittedAt, now time.Time) time.Duration {
	elapsed := now.Sub(lastSubmittedAt)
	if elapsed >= window {
		return 0
	}
	return window - elapsed
}

// ceilSeconds округляет остаток вверх: заблокированная отправка никогда
// не сообщает нулевой остаток.
func ceilSeconds(d time.Duration) int64 {
	secs := int64(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	return secs
}

func (s *SubmissionServiceImpl) RemainingCooldown(db *gorm.DB, userID, taskID string) (time.Duration, error) {
	last, err := s.submissionRepo.FindLatestByUserAndTask(db, userID, taskID)
	if err != nil {
		return 0, apperrors.DatabaseError(err)
	}
	if last == nil {
		return 0, nil
	}

	cfg := config.GetConfig()
	window := time.Duration(cfg.Tasks.CooldownHours) * time.Hour
	return remainingCooldown(window, last.CreatedAt, time.Now()), nil
}

// Submit создает сабмишен со связанной earning-транзакцией и начисляет
// сумму в pending - атомарно, в одной транзакции БД. Кулдаун проверяется
// внутри той же транзакции, после захвата строки баланса: параллельные
// отправки одного пользователя сериализуются и не обходят окно.
func (s *SubmissionServiceImpl) Submit(db *gorm.DB, userID string, req *dto.SubmitRequest) (*dto.SubmissionResponse, error) {
	start := time.Now()

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	task, err := s.taskRepo.FindByID(tx, req.TaskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	// Снятое с каталога задание неотличимо от несуществующего
	if !task.IsActive {
		return nil, apperrors.ErrTaskNotFound
	}

	// Блокируем строку баланса до конца транзакции: все операции по
	// одному пользователю сериализуются здесь
	balance, err := s.balanceRepo.GetOrCreate(tx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	last, err := s.submissionRepo.FindLatestByUserAndTask(tx, userID, task.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if last != nil {
		cfg := config.GetConfig()
		window := time.Duration(cfg.Tasks.CooldownHours) * time.Hour
		if remaining := remainingCooldown(window, last.CreatedAt, time.Now()); remaining > 0 {
			return nil, apperrors.CooldownActive(ceilSeconds(remaining))
		}
	}

	amount := task.Rate * float64(req.Quantity)

	submission := &models.Submission{
		UserID:        userID,
		TaskID:        task.ID,
		TaskTitle:     task.Title,
		Rate:          task.Rate,
		RateType:      task.RateType,
		UserQuantity:  req.Quantity,
		Amount:        amount,
		Details:       req.Details,
		ScreenshotURL: req.ScreenshotURL,
		Status:        models.SubmissionStatusPending,
	}
	if err := s.submissionRepo.Create(tx, submission); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	earning := &models.Transaction{
		UserID:       userID,
		Kind:         models.TransactionKindEarning,
		TaskName:     task.Title,
		Amount:       amount,
		Status:       models.SubmissionStatusPending,
		Details:      req.Details,
		SubmissionID: &submission.ID,
	}
	if err := s.transactionRepo.Create(tx, earning); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	balance.Pending += amount
	balance.Recalculate()
	if err := s.balanceRepo.Save(tx, balance); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.LedgerLog("submission_accrue", userID, amount, time.Since(start))

	return submissionToResponse(submission), nil
}

func (s *SubmissionServiceImpl) ListByUser(db *gorm.DB, userID string) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissionRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *submissionToResponse(&submissions[i]))
	}
	return responses, nil
}

func submissionToResponse(sub *models.Submission) *dto.SubmissionResponse {
	return &dto.SubmissionResponse{
		ID:            sub.ID,
		TaskID:        sub.TaskID,
		TaskTitle:     sub.TaskTitle,
		Rate:          sub.Rate,
		RateType:      sub.RateType,
		UserQuantity:  sub.UserQuantity,
		Amount:        sub.Amount,
		Details:       sub.Details,
		ScreenshotURL: sub.ScreenshotURL,
		Status:        string(sub.Status),
		CreatedAt:     sub.CreatedAt,
	}
}
