package email

import (
	"bytes"
	"text/template"
)

// Шаблоны писем. Простые текстовые: верстка писем не зона ядра.
var (
	decisionTmpl = template.Must(template.New("decision").Parse(
		`Your submission for "{{.TaskTitle}}" ({{.Amount}} Tk) has been {{.Status}}.`))

	payoutTmpl = template.Must(template.New("payout").Parse(
		`Payout of {{.Amount}} Tk for "{{.TaskTitle}}" confirmed. The amount is now available for withdrawal.`))

	withdrawalTmpl = template.Must(template.New("withdrawal").Parse(
		`Your withdrawal of {{.Amount}} Tk via {{.Method}} has been {{.Status}}.`))
)

type templateData struct {
	TaskTitle string
	Method    string
	Status    string
	Amount    float64
}

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
