package validator

import (
	"math"

	"takaearn_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) error {
	// 'is-submission-status': статус сабмишена из statuses.go
	if err := v.RegisterValidation("is-submission-status", validateSubmissionStatus); err != nil {
		return err
	}

	// 'taka': денежная сумма - положительная, не более 2 знаков после запятой
	if err := v.RegisterValidation("taka", validateTakaAmount); err != nil {
		return err
	}

	return nil
}

func validateSubmissionStatus(fl validator.FieldLevel) bool {
	return models.ValidSubmissionStatus(fl.Field().String())
}

func validateTakaAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	if amount <= 0 {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-9
}
