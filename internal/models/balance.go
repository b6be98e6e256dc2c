package models

// Balance - кошелек пользователя. Одна запись на user_id, создается лениво
// при первом начислении. Инвариант: Total == Available + Pending после
// каждой мутации, без исключений.
type Balance struct {
	BaseModel
	UserID    string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Total     float64 `gorm:"not null;default:0" json:"total"`
	Available float64 `gorm:"not null;default:0" json:"available"`
	Pending   float64 `gorm:"not null;default:0" json:"pending"`
}

// Recalculate восстанавливает инвариант после изменения available/pending.
func (b *Balance) Recalculate() {
	b.Total = b.Available + b.Pending
}
