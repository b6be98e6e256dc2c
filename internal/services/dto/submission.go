package dto

import "time"

type SubmitRequest struct {
	TaskID        string `json:"task_id" validate:"required,uuid4"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Details       string `json:"details" validate:"required,min=3"`
	ScreenshotURL string `json:"screenshot_url"`
}

type SubmissionResponse struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"task_id"`
	TaskTitle     string    `json:"task_title"`
	Rate          float64   `json:"rate"`
	RateType      string    `json:"rate_type"`
	UserQuantity  int       `json:"user_quantity"`
	Amount        float64   `json:"amount"`
	Details       string    `json:"details"`
	ScreenshotURL string    `json:"screenshot_url,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CooldownResponse - остаток кулдауна по заданию для текущего пользователя.
// RemainingSeconds == 0 означает, что отправка разрешена.
type CooldownResponse struct {
	TaskID           string `json:"task_id"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}
