package repositories

import (
	"errors"

	"takaearn_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BalanceRepository - единственный путь записи балансов. Сервисы-леджеры
// читают запись под FOR UPDATE и сохраняют ее в той же транзакции: так
// мутации одного пользователя сериализуются, а разные пользователи идут
// параллельно.
type BalanceRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.Balance, error)
	// FindForUpdate берет строку баланса под блокировку строки.
	// Вызывать только внутри транзакции.
	FindForUpdate(db *gorm.DB, userID string) (*models.Balance, error)
	// GetOrCreate возвращает баланс, лениво создавая нулевую запись.
	GetOrCreate(db *gorm.DB, userID string) (*models.Balance, error)
	Save(db *gorm.DB, balance *models.Balance) error
}

type BalanceRepositoryImpl struct{}

func NewBalanceRepository() BalanceRepository {
	return &BalanceRepositoryImpl{}
}

func (r *BalanceRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Balance, error) {
	var balance models.Balance
	err := db.First(&balance, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Кошелек без начислений - нулевая запись
			return &models.Balance{UserID: userID}, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *BalanceRepositoryImpl) FindForUpdate(db *gorm.DB, userID string) (*models.Balance, error) {
	var balance models.Balance
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &balance, nil
}

func (r *BalanceRepositoryImpl) GetOrCreate(db *gorm.DB, userID string) (*models.Balance, error) {
	balance, err := r.FindForUpdate(db, userID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// OnConflict DoNothing: конкурентная вставка того же user_id не ошибка,
	// строку все равно перечитаем под блокировкой.
	balance = &models.Balance{UserID: userID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(balance).Error; err != nil {
		return nil, err
	}
	return r.FindForUpdate(db, userID)
}

func (r *BalanceRepositoryImpl) Save(db *gorm.DB, balance *models.Balance) error {
	return db.Save(balance).Error
}
