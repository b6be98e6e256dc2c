package dto

import "encoding/json"

type TaskResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Rate         float64         `json:"rate"`
	RateType     string          `json:"rate_type"`
	Limit        int             `json:"limit"`
	Completed    int             `json:"completed"`
	Requirements json.RawMessage `json:"requirements,omitempty"`
}
