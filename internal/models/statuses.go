package models

type UserStatus string
type UserRole string
type SubmissionStatus string
type TransactionKind string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleWorker UserRole = "worker"
	UserRoleAdmin  UserRole = "admin"

	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusReceived SubmissionStatus = "received"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"

	TransactionKindEarning    TransactionKind = "earning"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
)

// IsTerminal сообщает, является ли статус конечным.
// Из approved/rejected переходы запрещены.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// ValidSubmissionStatus проверяет, что строка - валидный статус сабмишена.
func ValidSubmissionStatus(s string) bool {
	switch SubmissionStatus(s) {
	case SubmissionStatusPending, SubmissionStatusReceived,
		SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}
