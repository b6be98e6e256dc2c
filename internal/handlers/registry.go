package handlers

import (
	"takaearn_backend/internal/services"
	"takaearn_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	TaskHandler       *TaskHandler
	SubmissionHandler *SubmissionHandler
	WalletHandler     *WalletHandler
	AdminHandler      *AdminHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:       NewAuthHandler(base, container.Auth),
		TaskHandler:       NewTaskHandler(base, container.Task, container.Submission),
		SubmissionHandler: NewSubmissionHandler(base, container.Submission),
		WalletHandler:     NewWalletHandler(base, container.Wallet),
		AdminHandler:      NewAdminHandler(base, container.Review, container.Wallet),
	}
}
