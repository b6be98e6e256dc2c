package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"takaearn_backend/internal/models"
	"takaearn_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestReview_RejectRestoresPending - отклонение убирает из pending ровно
// начисленную сумму
func TestReview_RejectRestoresPending(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 4,
		"details":  "установлено на 4 устройства",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "reject"})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	balance := helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(0), balance.Pending)
	assert.Equal(t, float64(0), balance.Available)
	assert.Equal(t, float64(0), balance.Total)

	// Транзакция отражает отклонение, сумма не тронута
	var earning models.Transaction
	assert.NoError(t, tx.First(&earning, "submission_id = ?", submission.ID).Error)
	assert.Equal(t, models.SubmissionStatusRejected, earning.Status)
	assert.Equal(t, float64(20), earning.Amount)
}

// TestReview_ApproveWithOverride - подтверждение с корректировкой количества:
// из pending уходит исходная сумма, в available попадает пересчитанная.
func TestReview_ApproveWithOverride(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 3,
		"details":  "заявлено 3 установки",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	// Админ подтвердил только 2 из 3
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve", "override_quantity": 2})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resolved struct {
		UserQuantity int     `json:"user_quantity"`
		Amount       float64 `json:"amount"`
		Status       string  `json:"status"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &resolved))
	assert.Equal(t, 2, resolved.UserQuantity)
	assert.Equal(t, float64(10), resolved.Amount)
	assert.Equal(t, "approved", resolved.Status)

	balance := helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(0), balance.Pending)
	assert.Equal(t, float64(10), balance.Available)
	assert.Equal(t, float64(10), balance.Total)

	var earning models.Transaction
	assert.NoError(t, tx.First(&earning, "submission_id = ?", submission.ID).Error)
	assert.Equal(t, models.SubmissionStatusApproved, earning.Status)
	assert.Equal(t, float64(10), earning.Amount)
}

// TestReview_ZeroOverrideRejected - подтверждение нулевого количества
// не проходит валидацию: "ничего не подтверждено" выражается через reject
func TestReview_ZeroOverrideRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 3,
		"details":  "заявлено 3 установки",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve", "override_quantity": 0})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	// Сабмишен остался открытым, баланс не тронут
	var stored models.Submission
	assert.NoError(t, tx.First(&stored, "id = ?", submission.ID).Error)
	assert.Equal(t, models.SubmissionStatusPending, stored.Status)

	balance := helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(15), balance.Pending)
	assert.Equal(t, float64(0), balance.Available)
}

// TestReview_TwoStageReceiveThenApprove - receive с корректировкой меняет
// pending на дельту, последующий approve считает от нового количества.
func TestReview_TwoStageReceiveThenApprove(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 4,
		"details":  "заявлено 4 установки",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	// receive со снижением до 3: pending 20 -> 15
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "receive", "override_quantity": 3})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	balance := helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(15), balance.Pending)
	assert.Equal(t, float64(0), balance.Available)

	// approve без новой корректировки: из pending уходит 15, начисляется 15
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve"})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	balance = helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(0), balance.Pending)
	assert.Equal(t, float64(15), balance.Available)
	assert.Equal(t, float64(15), balance.Total)
}

// TestReview_TerminalStatusIsImmutable - повторное решение по закрытому
// сабмишену отклоняется и не трогает баланс.
func TestReview_TerminalStatusIsImmutable(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, worker := helpers.CreateAndLoginWorker(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	task := helpers.CreateTask(t, tx, "Install App", 5)

	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/submissions", workerToken, map[string]interface{}{
		"task_id":  task.ID,
		"quantity": 2,
		"details":  "две установки",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var submission struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &submission))

	res, _ = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "approve"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/submissions/"+submission.ID+"/resolve", adminToken,
		map[string]interface{}{"action": "reject"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already finalized")

	balance := helpers.LoadBalance(t, tx, worker.ID)
	assert.Equal(t, float64(10), balance.Available)
	assert.Equal(t, float64(0), balance.Pending)
}

// TestReview_RequiresAdmin - работнику решения недоступны
func TestReview_RequiresAdmin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	workerToken, _ := helpers.CreateAndLoginWorker(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, "GET", "/api/v1/admin/submissions", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
