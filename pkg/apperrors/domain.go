package apperrors

import (
	"net/http"
)

/*
Предопределенные доменные ошибки бухгалтерского ядра.
Фабрики используются там, где ошибке нужны детали (минуты блокировки,
остаток кулдауна).
*/

// --- AuthGate ---

var ErrAccountNotFound = New(
	CodeAccountNotFound,
	"auth",
	"Account not found",
	http.StatusNotFound,
)

var ErrInvalidPassword = New(
	CodeInvalidPassword,
	"auth",
	"Invalid password",
	http.StatusUnauthorized,
)

// ErrTooManyAttempts - третья подряд неудачная попытка: аккаунт заблокирован.
var ErrTooManyAttempts = New(
	CodeTooManyAttempts,
	"auth",
	"Too many failed attempts, account locked",
	http.StatusTooManyRequests,
)

// AccountLocked - фабрика для попытки входа в заблокированный аккаунт.
// remainingMinutes = ceil((lockoutUntil - now) / минута).
func AccountLocked(remainingMinutes int) *AppError {
	return New(
		CodeAccountLocked,
		"auth",
		"Account temporarily locked",
		http.StatusTooManyRequests,
	).WithDetails(map[string]int{"remaining_minutes": remainingMinutes})
}

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already exists",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

// --- SubmissionLedger / AdminReconciler ---

var ErrTaskNotFound = New(
	CodeTaskNotFound,
	"ledger",
	"Task not found",
	http.StatusNotFound,
)

var ErrSubmissionNotFound = New(
	CodeSubmissionNotFound,
	"ledger",
	"Submission not found",
	http.StatusNotFound,
)

// CooldownActive - фабрика для повторной отправки раньше окна кулдауна.
func CooldownActive(remainingSeconds int64) *AppError {
	return New(
		CodeCooldownActive,
		"ledger",
		"Task was submitted recently, cooldown is active",
		http.StatusTooManyRequests,
	).WithDetails(map[string]int64{"remaining_seconds": remainingSeconds})
}

// ErrAlreadyFinalized - переходы из approved/rejected запрещены.
var ErrAlreadyFinalized = New(
	CodeAlreadyFinalized,
	"ledger",
	"Submission is already finalized",
	http.StatusConflict,
)

var ErrInvalidDecision = New(
	CodeInvalidOperation,
	"ledger",
	"Decision is not valid for the current submission status",
	http.StatusBadRequest,
)

// --- WithdrawalLedger ---

var ErrInvalidTransaction = New(
	CodeInvalidTransaction,
	"wallet",
	"Transaction is not a pending withdrawal",
	http.StatusConflict,
)

var ErrInsufficientFunds = New(
	CodeInsufficientFunds,
	"wallet",
	"Withdrawal amount exceeds available balance",
	http.StatusBadRequest,
)

var ErrBelowMinimum = New(
	CodeBelowMinimum,
	"wallet",
	"Withdrawal amount is below the configured minimum",
	http.StatusBadRequest,
)

// --- Общие фабрики ---

// ErrNotFound - фабрика для преобразования gorm.ErrRecordNotFound и подобных
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "system", "Database operation failed", http.StatusInternalServerError)
}

func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).
		WithDetails(details)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "validation", message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}
