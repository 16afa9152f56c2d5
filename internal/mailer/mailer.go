package mailer

import (
	"log"

	"github.com/sanchalak/sanchalak-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers notification emails. Implementations may block; callers
// dispatch through Send below so delivery never delays a request.
type Mailer interface {
	SendMail(msg Message) error
}

// SMTPMailer sends mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer backed by the configured SMTP relay.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
}

// SendMail delivers a single message.
func (m *SMTPMailer) SendMail(msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	return m.dialer.DialAndSend(mail)
}

// Send dispatches a message on its own goroutine. Delivery failures are
// logged and never surfaced to the caller; the primary mutation has
// already committed by the time a notification goes out.
func Send(m Mailer, msg Message) {
	if m == nil {
		return
	}
	go func() {
		if err := m.SendMail(msg); err != nil {
			log.Printf("Failed to send mail to %s: %v", msg.To, err)
		}
	}()
}
