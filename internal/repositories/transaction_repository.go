package repositories

import (
	"errors"

	"takaearn_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(db *gorm.DB, tx *models.Transaction) error
	FindByID(db *gorm.DB, id string) (*models.Transaction, error)
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Transaction, error)
	// FindBySubmissionID - единственный способ найти earning-транзакцию
	// сабмишена. Поиск по (email, title, status) запрещен.
	FindBySubmissionID(db *gorm.DB, submissionID string) (*models.Transaction, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Transaction, error)
	FindWithdrawalsByStatus(db *gorm.DB, status models.SubmissionStatus) ([]models.Transaction, error)
	Update(db *gorm.DB, tx *models.Transaction) error
}

type TransactionRepositoryImpl struct{}

func NewTransactionRepository() TransactionRepository {
	return &TransactionRepositoryImpl{}
}

func (r *TransactionRepositoryImpl) Create(db *gorm.DB, tx *models.Transaction) error {
	return db.Create(tx).Error
}

func (r *TransactionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := db.First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&tx, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepositoryImpl) FindBySubmissionID(db *gorm.DB, submissionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := db.First(&tx, "submission_id = ?", submissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByUser - история кошелька, новые сверху
func (r *TransactionRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *TransactionRepositoryImpl) FindWithdrawalsByStatus(db *gorm.DB, status models.SubmissionStatus) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := db.Where("kind = ? AND status = ?", models.TransactionKindWithdrawal, status).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *TransactionRepositoryImpl) Update(db *gorm.DB, tx *models.Transaction) error {
	return db.Save(tx).Error
}
