// Package mail delivers plain-text email over SMTP using go-mail.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

const (
	defaultPort    = 587
	defaultTimeout = 15 * time.Second
)

// Config holds the SMTP relay settings. Host and From are required; auth is
// only negotiated when Username is set.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Configured reports whether enough settings are present to send mail.
func (c Config) Configured() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer implements ports.Mailer. A new connection is dialled per send.
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &SMTPMailer{cfg: cfg}
}

// Configured reports whether the relay settings allow sending.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Configured()
}

// Send delivers email. It returns ErrMailerNotConfigured without dialling when
// the relay settings are incomplete, and wraps transport failures in
// ErrMailDelivery.
func (m *SMTPMailer) Send(ctx context.Context, email domain.Email) error {
	if !m.Configured() {
		return domain.ErrMailerNotConfigured
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMailDelivery, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMailDelivery, err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(email domain.Email) (*gomail.Msg, error) {
	if len(email.To) == 0 {
		return nil, fmt.Errorf("%w: no recipients", domain.ErrMailDelivery)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("%w: sender %q: %w", domain.ErrMailerNotConfigured, m.cfg.From, err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("%w: recipients: %w", domain.ErrMailDelivery, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.Text)
	return msg, nil
}

func (m *SMTPMailer) clientOptions() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTimeout(m.cfg.Timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}
