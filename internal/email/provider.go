package email

// Provider определяет интерфейс для отправки уведомлений пользователю.
// Ядро не знает про SMTP: сервисы зовут доменные методы, реализация решает
// как доставить.
type Provider interface {
	// SendDecisionNotice - уведомление о решении по сабмишену
	SendDecisionNotice(to, taskTitle, status string, amount float64) error

	// SendPayoutNotice - уведомление о подтвержденной выплате
	SendPayoutNotice(to, taskTitle string, amount float64) error

	// SendWithdrawalNotice - уведомление о статусе заявки на вывод
	SendWithdrawalNotice(to, method, status string, amount float64) error
}
