package contextkeys

// ContextKey - тип ключей, которые кладутся в context/gin.Context
type ContextKey string

const (
	// DBContextKey - под этим ключом DBMiddleware кладет *gorm.DB
	// (пул или тестовую транзакцию) в контекст запроса.
	DBContextKey ContextKey = "db"

	// UserIDContextKey - id аутентифицированного пользователя (из JWT).
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey - роль аутентифицированного пользователя.
	RoleContextKey ContextKey = "role"
)
