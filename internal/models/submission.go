package models

// Submission - заявка пользователя на выполненное задание.
// Rate/RateType - снапшот тарифа на момент отправки: ставка в каталоге может
// поменяться, а бухгалтерия должна считаться по старой.
// Статус и количество мутируются только ReviewService; после approved/rejected
// запись неизменяема.
type Submission struct {
	BaseModel
	UserID        string           `gorm:"type:uuid;not null;index:idx_submissions_user_task,priority:1" json:"user_id"`
	TaskID        string           `gorm:"type:uuid;not null;index:idx_submissions_user_task,priority:2" json:"task_id"`
	TaskTitle     string           `gorm:"not null" json:"task_title"`
	Rate          float64          `gorm:"not null" json:"rate"`
	RateType      string           `json:"rate_type"`
	UserQuantity  int              `gorm:"not null" json:"user_quantity"`
	Amount        float64          `gorm:"not null" json:"amount"`
	Details       string           `json:"details"`
	ScreenshotURL string           `json:"screenshot_url,omitempty"`
	Status        SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}
