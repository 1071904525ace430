// file: service/mailer.go

package service

import (
	"snapgram-api/config"
	"snapgram-api/logger"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound mail collaborator. The SMTP implementation is used
// in production; tests substitute a mock.
type Mailer interface {
	Send(to, toName, subject, htmlBody string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig.SMTP
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to, toName, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetAddressHeader("To", to, toName)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Log.WithError(err).WithField("to", to).Error("Failed to send email")
		return err
	}
	return nil
}
