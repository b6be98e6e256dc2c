package dto

// Действия админского ревью. Тегированный вариант вместо перегрузки
// опциональным параметром: каждая ветка решения имеет явный контракт.
const (
	ReviewActionReject  = "reject"
	ReviewActionReceive = "receive"
	ReviewActionApprove = "approve"
)

// ReviewDecision - решение по сабмишену.
// OverrideQuantity имеет смысл только для receive/approve: админ корректирует
// заявленное количество, сумма пересчитывается по снапшоту ставки.
// Ноль не принимается: "ничего не подтверждено" выражается действием reject.
type ReviewDecision struct {
	Action           string `json:"action" validate:"required,oneof=reject receive approve"`
	OverrideQuantity *int   `json:"override_quantity,omitempty" validate:"omitempty,min=1"`
}

// WithdrawalDecision - решение по заявке на вывод.
type WithdrawalDecision struct {
	Action string `json:"action" validate:"required,oneof=reject approve"`
}
