package services

import (
	"takaearn_backend/internal/email"
	"takaearn_backend/internal/repositories"
)

// ServiceContainer собирает все сервисы приложения с общими репозиториями.
type ServiceContainer struct {
	Auth       AuthService
	Task       TaskService
	Submission SubmissionService
	Review     ReviewService
	Wallet     WalletService
}

func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	balanceRepo := repositories.NewBalanceRepository()
	taskRepo := repositories.NewTaskRepository()
	submissionRepo := repositories.NewSubmissionRepository()
	transactionRepo := repositories.NewTransactionRepository()

	return &ServiceContainer{
		Auth:       NewAuthService(userRepo),
		Task:       NewTaskService(taskRepo),
		Submission: NewSubmissionService(submissionRepo, transactionRepo, balanceRepo, taskRepo),
		Review:     NewReviewService(submissionRepo, transactionRepo, balanceRepo, userRepo, emailProvider),
		Wallet:     NewWalletService(balanceRepo, transactionRepo, userRepo, emailProvider),
	}
}
