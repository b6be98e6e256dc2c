package email

import (
	"fmt"

	"takaearn_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendDecisionNotice(to, taskTitle, status string, amount float64) error {
	body, err := render(decisionTmpl, templateData{TaskTitle: taskTitle, Status: status, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to render decision template: %w", err)
	}
	return p.send(to, "Submission update", body)
}

func (p *SMTPProvider) SendPayoutNotice(to, taskTitle string, amount float64) error {
	body, err := render(payoutTmpl, templateData{TaskTitle: taskTitle, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to render payout template: %w", err)
	}
	return p.send(to, "Payout successful", body)
}

func (p *SMTPProvider) SendWithdrawalNotice(to, method, status string, amount float64) error {
	body, err := render(withdrawalTmpl, templateData{Method: method, Status: status, Amount: amount})
	if err != nil {
		return fmt.Errorf("failed to render withdrawal template: %w", err)
	}
	return p.send(to, "Withdrawal update", body)
}
