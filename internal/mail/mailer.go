package mail

import (
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Email is a fully composed message ready for delivery.
type Email struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// Mailer delivers a composed email. Implementations own their transport
// timeouts; callers bound the overall dispatch separately.
type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// SMTPConfig holds the mail account settings for the SMTP transport.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer sends email through an authenticated SMTP account.
type SMTPMailer struct {
	client *gomail.Client
}

// NewSMTPMailer builds an SMTP transport with mandatory TLS and a bounded
// per-send timeout.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{client: client}, nil
}

var _ Mailer = (*SMTPMailer)(nil)

// Verify dials the SMTP server to confirm the account settings at startup.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := m.client.DialWithContext(ctx); err != nil {
		return err
	}
	return m.client.Close()
}

// Send composes and delivers a single message.
func (m *SMTPMailer) Send(ctx context.Context, e Email) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(e.FromName, e.From); err != nil {
		return err
	}
	if err := msg.To(e.To); err != nil {
		return err
	}
	if e.ReplyTo != "" {
		if err := msg.ReplyTo(e.ReplyTo); err != nil {
			return err
		}
	}
	msg.Subject(e.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, e.HTML)
	return m.client.DialAndSendWithContext(ctx, msg)
}
