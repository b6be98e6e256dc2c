package services

import (
	"time"

	"takaearn_backend/internal/config"
	"takaearn_backend/internal/email"
	"takaearn_backend/internal/logger"
	"takaearn_backend/internal/models"
	"takaearn_backend/internal/repositories"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	Resolve(db *gorm.DB, submissionID string, decision *dto.ReviewDecision) (*dto.SubmissionResponse, error)
	ListSubmissions(db *gorm.DB, status string) ([]dto.SubmissionResponse, error)
}

type ReviewServiceImpl struct {
	submissionRepo  repositories.SubmissionRepository
	transactionRepo repositories.TransactionRepository
	balanceRepo     repositories.BalanceRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewReviewService(
	submissionRepo repositories.SubmissionRepository,
	transactionRepo repositories.TransactionRepository,
	balanceRepo repositories.BalanceRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ReviewService {
	return &ReviewServiceImpl{
		submissionRepo:  submissionRepo,
		transactionRepo: transactionRepo,
		balanceRepo:     balanceRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// canTransition - допустимые переходы статусов сабмишена.
// pending -> received|approved|rejected, received -> approved|rejected.
// Из конечных статусов переходов нет.
func canTransition(from, to models.SubmissionStatus) bool {
	switch from {
	case models.SubmissionStatusPending:
		return to == models.SubmissionStatusReceived ||
			to == models.SubmissionStatusApproved ||
			to == models.SubmissionStatusRejected
	case models.SubmissionStatusReceived:
		return to == models.SubmissionStatusApproved ||
			to == models.SubmissionStatusRejected
	default:
		return false
	}
}

func statusForAction(action string) models.SubmissionStatus {
	switch action {
	case dto.ReviewActionReject:
		return models.SubmissionStatusRejected
	case dto.ReviewActionReceive:
		return models.SubmissionStatusReceived
	case dto.ReviewActionApprove:
		return models.SubmissionStatusApproved
	}
	return ""
}

// Resolve применяет решение админа к сабмишену: статус, пересчет баланса и
// синхронизация связанной earning-транзакции - в одной транзакции БД.
func (s *ReviewServiceImpl) Resolve(db *gorm.DB, submissionID string, decision *dto.ReviewDecision) (*dto.SubmissionResponse, error) {
	start := time.Now()
	cfg := config.GetConfig()

	target := statusForAction(decision.Action)
	if target == "" {
		return nil, apperrors.ErrInvalidDecision
	}
	if target == models.SubmissionStatusReceived && !cfg.Review.TwoStage {
		return nil, apperrors.ErrInvalidDecision.WithDetails(map[string]interface{}{
			"reason": "two-stage review is disabled",
		})
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	submission, err := s.submissionRepo.FindByIDForUpdate(tx, submissionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if submission.Status.IsTerminal() {
		return nil, apperrors.ErrAlreadyFinalized
	}
	if !canTransition(submission.Status, target) {
		return nil, apperrors.ErrInvalidDecision
	}

	// Сумма, числящаяся в pending за этот сабмишен на текущий момент.
	// После receive с корректировкой она отличается от начальной.
	originalAmount := submission.Amount

	balance, err := s.balanceRepo.GetOrCreate(tx, submission.UserID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	switch target {
	case models.SubmissionStatusRejected:
		balance.Pending -= originalAmount

	case models.SubmissionStatusReceived:
		if decision.OverrideQuantity != nil {
			newAmount := submission.Rate * float64(*decision.OverrideQuantity)
			balance.Pending += newAmount - originalAmount
			submission.UserQuantity = *decision.OverrideQuantity
			submission.Amount = newAmount
		}

	case models.SubmissionStatusApproved:
		finalQuantity := submission.UserQuantity
		if decision.OverrideQuantity != nil {
			finalQuantity = *decision.OverrideQuantity
		}
		finalAmount := submission.Rate * float64(finalQuantity)
		balance.Pending -= originalAmount
		balance.Available += finalAmount
		submission.UserQuantity = finalQuantity
		submission.Amount = finalAmount
	}

	submission.Status = target
	balance.Recalculate()

	if err := s.balanceRepo.Save(tx, balance); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if err := s.submissionRepo.Update(tx, submission); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Связанная транзакция ищется строго по submission_id
	earning, err := s.transactionRepo.FindBySubmissionID(tx, submission.ID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		// Сабмишен без транзакции - несогласованность данных, решение
		// при этом применяем
		logger.Warn("earning transaction missing for submission", "submission_id", submission.ID)
	} else {
		earning.Status = target
		earning.Amount = submission.Amount
		if err := s.transactionRepo.Update(tx, earning); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.LedgerLog("review_"+decision.Action, submission.UserID, submission.Amount, time.Since(start))

	s.notifyDecision(db, submission)

	return submissionToResponse(submission), nil
}

func (s *ReviewServiceImpl) ListSubmissions(db *gorm.DB, status string) ([]dto.SubmissionResponse, error) {
	var (
		submissions []models.Submission
		err         error
	)
	if status == "" {
		submissions, err = s.submissionRepo.FindAll(db)
	} else {
		if !models.ValidSubmissionStatus(status) {
			return nil, apperrors.ValidationError("Unknown submission status: " + status)
		}
		submissions, err = s.submissionRepo.FindByStatus(db, models.SubmissionStatus(status))
	}
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		responses = append(responses, *submissionToResponse(&submissions[i]))
	}
	return responses, nil
}

// notifyDecision шлет письмо после коммита. Отказ доставки не откатывает
// решение - только лог.
func (s *ReviewServiceImpl) notifyDecision(db *gorm.DB, submission *models.Submission) {
	if s.emailProvider == nil {
		return
	}
	user, err := s.userRepo.FindByID(db, submission.UserID)
	if err != nil {
		logger.WithError(err).Warn("decision notice skipped: user lookup failed", "user_id", submission.UserID)
		return
	}

	if submission.Status == models.SubmissionStatusApproved {
		err = s.emailProvider.SendPayoutNotice(user.Email, submission.TaskTitle, submission.Amount)
	} else {
		err = s.emailProvider.SendDecisionNotice(user.Email, submission.TaskTitle, string(submission.Status), submission.Amount)
	}
	if err != nil {
		logger.WithError(err).Warn("decision notice delivery failed", "user_id", submission.UserID)
	}
}
