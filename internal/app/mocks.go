package app

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) SendDecisionNotice(to, taskTitle, status string, amount float64) error {
	return nil
}

func (m *MockEmailProvider) SendPayoutNotice(to, taskTitle string, amount float64) error {
	return nil
}

func (m *MockEmailProvider) SendWithdrawalNotice(to, method, status string, amount float64) error {
	return nil
}
