package services

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	mail "github.com/go-mail/mail"
)

// Message is one outgoing email. At least one of Text or HTML must be set.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends a single message. Implementations do not retry. A context
// deadline bounds the send; cancellation without a deadline is only checked
// before dialing.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the static credentials the dialer is built with.
type SMTPConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	From    string
	Timeout time.Duration
}

// SMTPMailer sends through one go-mail dialer created at startup.
type SMTPMailer struct {
	dialer *mail.Dialer
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	if cfg.Port == 465 {
		d.SSL = true
	}
	if cfg.Timeout > 0 {
		d.Timeout = cfg.Timeout
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{dialer: d, from: from}
}

// Verify dials and authenticates once without sending anything.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sc, err := m.dialerFor(ctx).Dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return sc.Close()
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.From == "" {
		msg.From = m.from
	}
	mm, err := buildMessage(msg)
	if err != nil {
		return err
	}
	if err := m.dialerFor(ctx).DialAndSend(mm); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// dialerFor returns a copy of the shared dialer whose timeout does not outlive
// the context deadline.
func (m *SMTPMailer) dialerFor(ctx context.Context) *mail.Dialer {
	deadline, ok := ctx.Deadline()
	if !ok {
		return m.dialer
	}
	d := *m.dialer
	if remaining := time.Until(deadline); d.Timeout <= 0 || remaining < d.Timeout {
		d.Timeout = remaining
	}
	return &d
}

func buildMessage(msg Message) (*mail.Message, error) {
	if msg.To == "" {
		return nil, errors.New("smtp send: missing recipient")
	}
	if msg.Text == "" && msg.HTML == "" {
		return nil, errors.New("smtp send: empty body")
	}

	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}
	return m, nil
}
