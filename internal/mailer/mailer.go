package mailer

import (
	"context"

	mail "github.com/wneessen/go-mail"

	"github.com/spec-kit/hospital-staff-service/internal/config"
)

// Message is a plain-text outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers messages to an outbound relay.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends over an SMTP relay with STARTTLS and username/password
// auth. Every delivery attempt is bounded by the configured timeout so a slow
// relay can never stall a caller.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer builds a mailer from config.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	out := mail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return err
	}
	if err := out.To(msg.To); err != nil {
		return err
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout()),
	)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout())
	defer cancel()
	return client.DialAndSendWithContext(sendCtx, out)
}
