package dto

import "time"

type BalanceResponse struct {
	Total     float64 `json:"total"`
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
}

type WithdrawRequest struct {
	Method  string  `json:"method" validate:"required,oneof=bkash nagad rocket bank"`
	Account string  `json:"account" validate:"required,min=5,max=64"`
	Amount  float64 `json:"amount" validate:"required,taka"`
}

type TransactionResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	TaskName     string    `json:"task_name"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	Details      string    `json:"details"`
	SubmissionID string    `json:"submission_id,omitempty"`
	Method       string    `json:"method,omitempty"`
	Account      string    `json:"account,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
