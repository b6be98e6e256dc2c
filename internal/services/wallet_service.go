package services

import (
	"fmt"
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

type WalletService interface {
	GetBalance(db *gorm.DB, userID string) (*dto.BalanceResponse, error)
	ListTransactions(db *gorm.DB, userID string) ([]dto.TransactionResponse, error)
	RequestWithdrawal(db *gorm.DB, userID string, req *dto.WithdrawRequest) (*dto.TransactionResponse, error)
	ResolveWithdrawal(db *gorm.DB, transactionID string, decision *dto.WithdrawalDecision) (*dto.TransactionResponse, error)
	ListWithdrawals(db *gorm.DB, status string) ([]dto.TransactionResponse, error)
}

type WalletServiceImpl struct {
	balanceRepo     repositories.BalanceRepository
	transactionRepo repositories.TransactionRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewWalletService(
	balanceRepo repositories.BalanceRepository,
	transactionRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) WalletService {
	return &WalletServiceImpl{
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// GetBalance - чтение кошелька. Для пользователя без начислений возвращает
// нули, запись в БД не создается.
func (s *WalletServiceImpl) GetBalance(db *gorm.DB, userID string) (*dto.BalanceResponse, error) {
	balance, err := s.balanceRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.BalanceResponse{
		Total:     balance.Total,
		Available: balance.Available,
		Pending:   balance.Pending,
	}, nil
}

func (s *WalletServiceImpl) ListTransactions(db *gorm.DB, userID string) ([]dto.TransactionResponse, error) {
	transactions, err := s.transactionRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, *transactionToResponse(&transactions[i]))
	}
	return responses, nil
}

// RequestWithdrawal резервирует сумму под вывод: available уменьшается сразу,
// в историю пишется withdrawal-транзакция в статусе pending.
func (s *WalletServiceImpl) RequestWithdrawal(db *gorm.DB, userID string, req *dto.WithdrawRequest) (*dto.TransactionResponse, error) {
	start := time.Now()
	cfg := config.GetConfig()

	if req.Amount < cfg.Wallet.MinWithdrawal {
		return nil, apperrors.ErrBelowMinimum.WithDetails(map[string]interface{}{
			"minimum": cfg.Wallet.MinWithdrawal,
		})
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	balance, err := s.balanceRepo.GetOrCreate(tx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if req.Amount > balance.Available {
		return nil, apperrors.ErrInsufficientFunds.WithDetails(map[string]interface{}{
			"available": balance.Available,
			"requested": req.Amount,
		})
	}

	balance.Available -= req.Amount
	balance.Recalculate()
	if err := s.balanceRepo.Save(tx, balance); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	withdrawal := &models.Transaction{
		UserID:   userID,
		Kind:     models.TransactionKindWithdrawal,
		TaskName: fmt.Sprintf("Withdrawal (%s)", req.Method),
		Amount:   req.Amount,
		Status:   models.SubmissionStatusPending,
		Details:  fmt.Sprintf("Account: %s", req.Account),
		Method:   req.Method,
		Account:  req.Account,
	}
	if err := s.transactionRepo.Create(tx, withdrawal); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.LedgerLog("withdrawal_request", userID, req.Amount, time.Since(start))

	return transactionToResponse(withdrawal), nil
}

// ResolveWithdrawal применяет решение админа к заявке на вывод.
// Отклонение возвращает зарезервированную сумму в available.
func (s *WalletServiceImpl) ResolveWithdrawal(db *gorm.DB, transactionID string, decision *dto.WithdrawalDecision) (*dto.TransactionResponse, error) {
	start := time.Now()

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	withdrawal, err := s.transactionRepo.FindByIDForUpdate(tx, transactionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if withdrawal.Kind != models.TransactionKindWithdrawal ||
		withdrawal.Status != models.SubmissionStatusPending {
		return nil, apperrors.ErrInvalidTransaction
	}

	switch decision.Action {
	case dto.ReviewActionApprove:
		withdrawal.Status = models.SubmissionStatusApproved

	case dto.ReviewActionReject:
		withdrawal.Status = models.SubmissionStatusRejected

		balance, err := s.balanceRepo.GetOrCreate(tx, withdrawal.UserID)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		balance.Available += withdrawal.Amount
		balance.Recalculate()
		if err := s.balanceRepo.Save(tx, balance); err != nil {
			return nil, apperrors.DatabaseError(err)
		}

	default:
		return nil, apperrors.ErrInvalidDecision
	}

	if err := s.transactionRepo.Update(tx, withdrawal); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.LedgerLog("withdrawal_"+decision.Action, withdrawal.UserID, withdrawal.Amount, time.Since(start))

	s.notifyWithdrawal(db, withdrawal)

	return transactionToResponse(withdrawal), nil
}

func (s *WalletServiceImpl) ListWithdrawals(db *gorm.DB, status string) ([]dto.TransactionResponse, error) {
	if status == "" {
		status = string(models.SubmissionStatusPending)
	}
	if !models.ValidSubmissionStatus(status) {
		return nil, apperrors.ValidationError("Unknown transaction status: " + status)
	}

	transactions, err := s.transactionRepo.FindWithdrawalsByStatus(db, models.SubmissionStatus(status))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, *transactionToResponse(&transactions[i]))
	}
	return responses, nil
}

func (s *WalletServiceImpl) notifyWithdrawal(db *gorm.DB, withdrawal *models.Transaction) {
	if s.emailProvider == nil {
		return
	}
	user, err := s.userRepo.FindByID(db, withdrawal.UserID)
	if err != nil {
		logger.WithError(err).Warn("withdrawal notice skipped: user lookup failed", "user_id", withdrawal.UserID)
		return
	}
	if err := s.emailProvider.SendWithdrawalNotice(user.Email, withdrawal.Method, string(withdrawal.Status), withdrawal.Amount); err != nil {
		logger.WithError(err).Warn("withdrawal notice delivery failed", "user_id", withdrawal.UserID)
	}
}

func transactionToResponse(t *models.Transaction) *dto.TransactionResponse {
	resp := &dto.TransactionResponse{
		ID:        t.ID,
		Kind:      string(t.Kind),
		TaskName:  t.TaskName,
		Amount:    t.Amount,
		Status:    string(t.Status),
		Details:   t.Details,
		Method:    t.Method,
		Account:   t.Account,
		CreatedAt: t.CreatedAt,
	}
	if t.SubmissionID != nil {
		resp.SubmissionID = *t.SubmissionID
	}
	return resp
}
