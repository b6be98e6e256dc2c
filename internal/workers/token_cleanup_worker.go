package workers

import (
	"context"
	"time"

	"takaearn_backend/internal/logger"
	"takaearn_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker периодически удаляет истекшие refresh-токены.
type TokenCleanupWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, userRepo repositories.UserRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:       db,
		userRepo: userRepo,
		interval: 6 * time.Hour,
	}
}

// Start запускает фоновую чистку токенов
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

func (w *TokenCleanupWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			removed, err := w.userRepo.CleanExpiredRefreshTokens(w.db)
			if err != nil {
				logger.WorkerLog("token_cleanup", "clean_expired", err)
				continue
			}
			if removed > 0 {
				logger.Info("Expired refresh tokens removed", "count", removed)
			}
		}
	}
}
