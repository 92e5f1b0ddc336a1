package notifier

import (
	"adboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// EmailNotifier sends notifications over SMTP. The recipient is an email
// address.
type EmailNotifier struct {
	cfg *config.Config
}

func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

func (e *EmailNotifier) Notify(recipient, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(e.cfg.Email.FromEmail, e.cfg.Email.FromName))
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "AdBoard notification")
	m.SetBody("text/plain", message)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.Username,
		e.cfg.Email.Password,
	)

	return d.DialAndSend(m)
}
