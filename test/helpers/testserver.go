package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"takaearn_backend/database"
	"takaearn_backend/internal/app"
	"takaearn_backend/internal/config"
	"takaearn_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer - gin-роутер поверх тестовой БД. Запросы идут напрямую через
// ServeHTTP: это позволяет пронести тестовую транзакцию в контексте запроса,
// DBMiddleware подхватит ее вместо пула.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := app.SetupRouter(cfg, db)

	log.Printf("Тестовый сервер запущен, тестовая БД (%s) настроена.", dsn)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// BeginTransaction открывает транзакцию для изоляции теста.
// Все изменения теста откатываются в RollbackTransaction.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось открыть тестовую транзакцию: %v", tx.Error)
	}
	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("Откат тестовой транзакции: %v", err)
	}
}

// SendRequest шлет запрос через роутер внутри тестовой транзакции tx.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	ts.Router.ServeHTTP(recorder, req)

	res := recorder.Result()
	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
