package services

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"takaearn_backend/internal/auth"
	"takaearn_backend/internal/config"
	"takaearn_backend/internal/logger"
	"takaearn_backend/internal/models"
	"takaearn_backend/internal/repositories"
	"takaearn_backend/internal/services/dto"
	"takaearn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Precheck проверяет аккаунт без пароля: существование и блокировку.
	Precheck(db *gorm.DB, email string) error
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
	}
}

// NormalizeEmail приводит email к канонической форме для сравнения
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// lockoutRemainingMinutes возвращает остаток блокировки в минутах,
// округленный вверх. 0 - блокировки нет или она истекла.
func lockoutRemainingMinutes(lockoutUntil *time.Time, now time.Time) int {
	if lockoutUntil == nil || !lockoutUntil.After(now) {
		return 0
	}
	return int(math.Ceil(lockoutUntil.Sub(now).Minutes()))
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        NormalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Role:         models.UserRoleWorker,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login - аутентификация с учетом блокировки после неудачных попыток.
// Каждый вызов, меняющий failedAttempts/lockoutUntil, сохраняет аккаунт
// синхронно до возврата.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.findAccount(db, req.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if remaining := lockoutRemainingMinutes(user.LockoutUntil, now); remaining > 0 {
		return nil, apperrors.AccountLocked(remaining)
	}

	// Истекшая блокировка снимается и дает свежий лимит попыток
	lockoutCleared := false
	if user.LockoutUntil != nil {
		user.LockoutUntil = nil
		user.FailedAttempts = 0
		lockoutCleared = true
	}

	cfg := config.GetConfig()

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		user.FailedAttempts++
		if user.FailedAttempts >= cfg.Auth.MaxFailedAttempts {
			lockoutUntil := now.Add(time.Duration(cfg.Auth.LockoutMinutes) * time.Minute)
			user.LockoutUntil = &lockoutUntil
			if err := s.userRepo.Update(db, user); err != nil {
				return nil, apperrors.InternalError(err)
			}
			logger.Warn("account locked after repeated failures", "email", user.Email)
			return nil, apperrors.ErrTooManyAttempts
		}
		if err := s.userRepo.Update(db, user); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return nil, apperrors.ErrInvalidPassword
	}

	// Успешный вход сбрасывает счетчик
	if user.FailedAttempts != 0 || user.LockoutUntil != nil || lockoutCleared {
		user.FailedAttempts = 0
		user.LockoutUntil = nil
		if err := s.userRepo.Update(db, user); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.buildLoginResponse(db, user)
}

// Precheck - вызов AuthGate без пароля: успех, если аккаунт существует
// и не заблокирован. Счетчик попыток не трогает.
func (s *AuthServiceImpl) Precheck(db *gorm.DB, email string) error {
	user, err := s.findAccount(db, email)
	if err != nil {
		return err
	}
	if remaining := lockoutRemainingMinutes(user.LockoutUntil, time.Now()); remaining > 0 {
		return apperrors.AccountLocked(remaining)
	}
	return nil
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.LoginResponse, error) {
	rt, err := s.userRepo.FindRefreshToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if rt.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.DeleteRefreshToken(db, refreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token expired")
	}

	user, err := s.userRepo.FindByID(db, rt.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	// Ротация: старый токен гасим, в ответе будет новый
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(db, user)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(db, refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) findAccount(db *gorm.DB, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, NormalizeEmail(email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) buildLoginResponse(db *gorm.DB, user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: &dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(db *gorm.DB, userID string) (string, error) {
	token := generateRandomToken()
	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(db, rt); err != nil {
		return "", err
	}
	return token, nil
}

func generateRandomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand не отказывает на поддерживаемых платформах
		panic(err)
	}
	return hex.EncodeToString(b)
}
