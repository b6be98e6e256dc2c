package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"takaearn_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя с автоматическим хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleWorker
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password, // сырой пароль, CreateUser захеширует
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	user.PasswordHash = password
	return loginResponse.Token, user
}

// CreateAndLoginWorker создает работника с уникальным email
func CreateAndLoginWorker(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("worker_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Worker", email, "password123", models.UserRoleWorker)
}

// CreateAndLoginAdmin создает админа с уникальным email
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateTask создает задание каталога
func CreateTask(t *testing.T, tx *gorm.DB, title string, rate float64) *models.Task {
	task := &models.Task{
		Title:    title,
		Rate:     rate,
		RateType: "per install",
		Limit:    100,
		IsActive: true,
	}
	if err := tx.Create(task).Error; err != nil {
		t.Fatalf("Не удалось создать тестовое задание: %v", err)
	}
	return task
}

// SeedBalance создает кошелек пользователя с заданными суммами
func SeedBalance(t *testing.T, tx *gorm.DB, userID string, available, pending float64) *models.Balance {
	balance := &models.Balance{
		UserID:    userID,
		Available: available,
		Pending:   pending,
	}
	balance.Recalculate()
	if err := tx.Create(balance).Error; err != nil {
		t.Fatalf("Не удалось создать тестовый баланс: %v", err)
	}
	return balance
}

// LoadBalance перечитывает кошелек пользователя из БД
func LoadBalance(t *testing.T, tx *gorm.DB, userID string) *models.Balance {
	var balance models.Balance
	if err := tx.First(&balance, "user_id = ?", userID).Error; err != nil {
		t.Fatalf("Не удалось прочитать баланс пользователя %s: %v", userID, err)
	}
	return &balance
}
