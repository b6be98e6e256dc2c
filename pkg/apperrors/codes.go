package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Аутентификация и авторизация (сквозные)
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Доменные коды (см. domain.go). Все они - восстановимые типизированные
// результаты, которые отдаются вызывающему как есть, без паник.
const (
	// AuthGate
	CodeAccountNotFound ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	CodeTooManyAttempts ErrorCode = "TOO_MANY_ATTEMPTS"
	CodeAccountLocked   ErrorCode = "ACCOUNT_LOCKED"

	// Ledger
	CodeTaskNotFound       ErrorCode = "TASK_NOT_FOUND"
	CodeSubmissionNotFound ErrorCode = "SUBMISSION_NOT_FOUND"
	CodeCooldownActive     ErrorCode = "COOLDOWN_ACTIVE"
	CodeAlreadyFinalized   ErrorCode = "ALREADY_FINALIZED"

	// Wallet
	CodeInvalidTransaction ErrorCode = "INVALID_TRANSACTION"
	CodeInsufficientFunds  ErrorCode = "INSUFFICIENT_FUNDS"
	CodeBelowMinimum       ErrorCode = "BELOW_MINIMUM"
)
