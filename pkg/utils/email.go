package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. A zero-valued Mailer (no host
// configured) silently drops messages so deployments without SMTP still work.
type Mailer struct {
	From string
	Pass string
	Host string
	Port int
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.Host != ""
}

func (m *Mailer) SendEmail(to, subject, body string) error {
	if !m.Enabled() {
		Logger.Debugf("SMTP not configured, dropping email to %s", to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.Host, m.Port, m.From, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		return ErrorHandler(err, fmt.Sprintf("failed to send email to %s", to))
	}

	return nil
}
