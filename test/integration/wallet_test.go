package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"takaearn_backend/internal/models"
	"takaearn_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestGetBalance_FreshUser - пользователь без начислений видит нули,
// запись кошелька при этом не создается.
func TestGetBalance_FreshUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/wallet/balance", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var balance struct {
		Total     float64 `json:"total"`
		Available float64 `json:"available"`
		Pending   float64 `json:"pending"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &balance))
	assert.Equal(t, float64(0), balance.Total)
	assert.Equal(t, float64(0), balance.Available)
	assert.Equal(t, float64(0), balance.Pending)

	var count int64
	tx.Model(&models.Balance{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestWithdrawal_ReservesAvailable - заявка на вывод сразу уменьшает available
func TestWithdrawal_ReservesAvailable(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	helpers.SeedBalance(t, tx, user.ID, 500, 0)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "bkash",
		"account": "01712345678",
		"amount":  400,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var withdrawal struct {
		ID     string  `json:"id"`
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
		Status string  `json:"status"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &withdrawal))
	assert.Equal(t, "withdrawal", withdrawal.Kind)
	assert.Equal(t, float64(400), withdrawal.Amount)
	assert.Equal(t, "pending", withdrawal.Status)

	balance := helpers.LoadBalance(t, tx, user.ID)
	assert.Equal(t, float64(100), balance.Available)
	assert.Equal(t, float64(100), balance.Total)
}

// TestWithdrawal_InsufficientFunds - сумма сверх available отклоняется,
// pending при этом не учитывается.
func TestWithdrawal_InsufficientFunds(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	// В pending много, но выводить можно только из available
	helpers.SeedBalance(t, tx, user.ID, 150, 1000)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "nagad",
		"account": "01898765432",
		"amount":  200,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "exceeds available balance")

	balance := helpers.LoadBalance(t, tx, user.ID)
	assert.Equal(t, float64(150), balance.Available)
	assert.Equal(t, float64(1000), balance.Pending)
}

// TestWithdrawal_BelowMinimum - минимальная сумма вывода из конфига
func TestWithdrawal_BelowMinimum(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	helpers.SeedBalance(t, tx, user.ID, 500, 0)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "rocket",
		"account": "01711112222",
		"amount":  50,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "below the configured minimum")
}

// TestWithdrawal_RejectRefunds - отклонение возвращает зарезервированную
// сумму в available
func TestWithdrawal_RejectRefunds(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	helpers.SeedBalance(t, tx, user.ID, 500, 0)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "bkash",
		"account": "01712345678",
		"amount":  400,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var withdrawal struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &withdrawal))

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/withdrawals/"+withdrawal.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "reject"})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	balance := helpers.LoadBalance(t, tx, user.ID)
	assert.Equal(t, float64(500), balance.Available)
	assert.Equal(t, float64(500), balance.Total)
}

// TestWithdrawal_ApproveKeepsReservation - подтверждение закрывает заявку,
// деньги не возвращаются
func TestWithdrawal_ApproveKeepsReservation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	helpers.SeedBalance(t, tx, user.ID, 500, 0)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "bank",
		"account": "1234567890123",
		"amount":  400,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var withdrawal struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &withdrawal))

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/withdrawals/"+withdrawal.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve"})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	balance := helpers.LoadBalance(t, tx, user.ID)
	assert.Equal(t, float64(100), balance.Available)

	// Повторное решение по закрытой заявке невозможно
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/withdrawals/"+withdrawal.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "reject"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "not a pending withdrawal")

	balance = helpers.LoadBalance(t, tx, user.ID)
	assert.Equal(t, float64(100), balance.Available)
}

// TestResolveEarningAsWithdrawal - earning-транзакция не проходит через
// админский вывод
func TestResolveEarningAsWithdrawal(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _ := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 1,
		"details":  "одна установка",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	var earning models.Transaction
	assert.NoError(t, tx.First(&earning, "submission_id = ?", submission.ID).Error)

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/withdrawals/"+earning.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "not a pending withdrawal")
}

// TestTransactionHistory - история кошелька в порядке от новых к старым
func TestTransactionHistory(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginWorker(t, ts, tx)
	helpers.SeedBalance(t, tx, user.ID, 1000, 0)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	_, _ = ts.SendRequest(t, tx, "POST", "/api/v1/submissions", token, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 2,
		"details":  "две установки",
	})
	_, _ = ts.SendRequest(t, tx, "POST", "/api/v1/wallet/withdrawals", token, map[string]interface{}{
		"method":  "bkash",
		"account": "01712345678",
		"amount":  200,
	})

	res, bodyStr := ts.SendRequest(t, tx, "GET", "/api/v1/wallet/transactions", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var history []struct {
		Kind   string  `json:"kind"`
		Amount float64 `json:"amount"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &history))
	assert.Len(t, history, 2)
	kinds := []string{history[0].Kind, history[1].Kind}
	assert.Contains(t, kinds, "earning")
	assert.Contains(t, kinds, "withdrawal")
}
