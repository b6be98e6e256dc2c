package models

import "gorm.io/datatypes"

// Task - позиция каталога заданий. Для бухгалтерского ядра это read-only
// вход: редактирование каталога живет в админке и сюда не входит.
type Task struct {
	BaseModel
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	Rate         float64        `gorm:"not null" json:"rate"`      // така за единицу
	RateType     string         `gorm:"not null" json:"rate_type"` // метка единицы ("per install" и т.п.)
	Limit        int            `gorm:"not null;default:0" json:"limit"`
	Completed    int            `gorm:"not null;default:0" json:"completed"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	Requirements datatypes.JSON `json:"requirements,omitempty"`
}
