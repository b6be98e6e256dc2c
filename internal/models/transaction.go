package models

// Transaction - строка истории кошелька.
// Для earning-транзакции SubmissionID обязателен и указывает ровно на один
// сабмишен на все время жизни записи; поиск связанной транзакции идет ТОЛЬКО
// по этому ключу. Для withdrawal SubmissionID пуст, вместо него Method/Account.
type Transaction struct {
	BaseModel
	UserID       string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind         TransactionKind  `gorm:"type:varchar(20);not null;index" json:"kind"`
	TaskName     string           `json:"task_name"`
	Amount       float64          `gorm:"not null" json:"amount"`
	Status       SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Details      string           `json:"details"`
	SubmissionID *string          `gorm:"type:uuid;uniqueIndex" json:"submission_id,omitempty"`
	Method       string           `json:"method,omitempty"`
	Account      string           `json:"account,omitempty"`
}
