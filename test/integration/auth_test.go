package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"takaearn_backend/internal/models"
	"takaearn_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация и логин "золотого пути"
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("signup_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"name":     "Новый Работник",
		"email":    email,
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
	assert.Contains(t, logBodyStr, email)
}

// TestRegister_DuplicateEmail - повторная регистрация на тот же email
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("dup_%d@test.com", time.Now().UnixNano())
	_, _ = helpers.CreateAndLoginUser(t, ts, tx, "First", email, "password123", models.UserRoleWorker)

	// Email нормализуется: регистр и пробелы не создают второй аккаунт
	registerBody := map[string]interface{}{
		"name":     "Second",
		"email":    "  " + email + " ",
		"password": "password456",
	}
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists")
}

// TestLogin_UnknownAccount - логин на несуществующий email
func TestLogin_UnknownAccount(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	loginBody := map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever123",
	}
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Account not found")
}

// TestLogin_LockoutAfterThreeFailures - три неверных пароля подряд
// блокируют аккаунт на час, правильный пароль перестает работать.
func TestLogin_LockoutAfterThreeFailures(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("lockme_%d@test.com", time.Now().UnixNano())
	user := &models.User{Name: "Lock Me", Email: email, PasswordHash: "correct_pass1"}
	assert.NoError(t, helpers.CreateUser(t, tx, user))

	badLogin := map[string]interface{}{"email": email, "password": "wrong_pass99"}

	// Первые две попытки: обычный отказ по паролю
	for i := 0; i < 2; i++ {
		res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", badLogin)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Contains(t, bodyStr, "Invalid password")
	}

	// Третья попытка включает блокировку
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", badLogin)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Contains(t, bodyStr, "Too many failed attempts")

	// Правильный пароль во время блокировки не срабатывает
	goodLogin := map[string]interface{}{"email": email, "password": "correct_pass1"}
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", goodLogin)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Contains(t, bodyStr, "Account temporarily locked")
	assert.Contains(t, bodyStr, "remaining_minutes")

	var stored models.User
	assert.NoError(t, tx.First(&stored, "email = ?", email).Error)
	assert.NotNil(t, stored.LockoutUntil)
	// Блокировка выставлена ровно на час (с допуском на время теста)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *stored.LockoutUntil, 10*time.Second)
}

// TestLogin_FailureCounterResetsOnSuccess - успешный вход обнуляет счетчик
func TestLogin_FailureCounterResetsOnSuccess(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("resetme_%d@test.com", time.Now().UnixNano())
	user := &models.User{Name: "Reset Me", Email: email, PasswordHash: "correct_pass1"}
	assert.NoError(t, helpers.CreateUser(t, tx, user))

	badLogin := map[string]interface{}{"email": email, "password": "wrong_pass99"}
	goodLogin := map[string]interface{}{"email": email, "password": "correct_pass1"}

	// Две неудачи, затем успех
	for i := 0; i < 2; i++ {
		res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", badLogin)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}
	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", goodLogin)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Счетчик обнулен: еще две неудачи не блокируют
	for i := 0; i < 2; i++ {
		res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", badLogin)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, bodyStr)
	}

	var stored models.User
	assert.NoError(t, tx.First(&stored, "email = ?", email).Error)
	assert.Equal(t, 2, stored.FailedAttempts)
	assert.Nil(t, stored.LockoutUntil)
}

// TestPrecheck - проверка аккаунта без пароля не трогает счетчик попыток
func TestPrecheck(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("precheck_%d@test.com", time.Now().UnixNano())
	user := &models.User{Name: "Precheck", Email: email, PasswordHash: "correct_pass1"}
	assert.NoError(t, helpers.CreateUser(t, tx, user))

	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/auth/precheck", "", map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/auth/precheck", "", map[string]interface{}{"email": "ghost@test.com"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Account not found")

	var stored models.User
	assert.NoError(t, tx.First(&stored, "email = ?", email).Error)
	assert.Equal(t, 0, stored.FailedAttempts)
}
