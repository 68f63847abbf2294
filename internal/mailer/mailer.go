// Package mailer sends transactional mail, or logs it when SMTP is not
// configured.
package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MikeMC777/ropa-market/internal/config"
)

const sendTimeout = 15 * time.Second

type Mailer interface {
	Send(to, subject, body string) error
}

// New returns an SMTP mailer when cfg has a host, otherwise a console mailer.
func New(cfg config.SMTPConfig) (Mailer, error) {
	if !cfg.Enabled() {
		log.Printf("[mailer] SMTP_HOST not set, mail goes to the log")
		return Console{}, nil
	}
	return NewSMTP(cfg)
}

type Console struct{}

func (Console) Send(to, subject, body string) error {
	log.Printf("[mailer] to=%s subject=%q\n%s", to, subject, body)
	return nil
}

// SMTP delivers through a relay with STARTTLS when the server offers it.
type SMTP struct {
	from string
	send func(ctx context.Context, msg *mail.Msg) error
}

func NewSMTP(cfg config.SMTPConfig) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(sendTimeout),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTP{
		from: from,
		send: func(ctx context.Context, msg *mail.Msg) error {
			return client.DialAndSendWithContext(ctx, msg)
		},
	}, nil
}

func (m *SMTP) Send(to, subject, body string) error {
	msg, err := m.compose(to, subject, body)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	log.Printf("[mailer] sent to=%s subject=%q", to, subject)
	return nil
}

// compose builds the message. Addresses are parsed, so header injection
// through them fails here.
func (m *SMTP) compose(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("from address %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("to address %q: %w", to, err)
	}
	msg.Subject(strings.NewReplacer("\r", "", "\n", "").Replace(subject))
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
