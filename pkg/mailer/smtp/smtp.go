// Package smtp implements mailer.Transport over SMTP using go-mail.
//
// Credentials map to SMTP plain auth: the identity is the account address
// and username, the secret is the app password. Each delivery dials a
// fresh connection, which keeps long-running jobs immune to idle
// connection drops between throttled sends.
package smtp

import (
	"context"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/sendloop/sendloop/pkg/mailer"
)

// Config holds SMTP server settings. The credential supplies auth.
type Config struct {
	Host        string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	DialTimeout time.Duration `env:"SMTP_DIAL_TIMEOUT" envDefault:"15s"`
}

// Transport implements mailer.Transport against one SMTP server.
type Transport struct {
	cfg Config
}

// New creates an SMTP transport.
func New(cfg Config) *Transport {
	return &Transport{cfg: cfg}
}

// client builds a go-mail client authenticated with cred.
func (t *Transport) client(cred mailer.Credential) (*mail.Client, error) {
	if cred.Identity == "" || cred.Secret == "" {
		return nil, mailer.ErrMissingCredential
	}
	c, err := mail.NewClient(t.cfg.Host,
		mail.WithPort(t.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cred.Identity),
		mail.WithPassword(cred.Secret),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(t.cfg.DialTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mailer.ErrTransportFailed, err)
	}
	return c, nil
}

// Verify dials the server and authenticates without sending anything.
func (t *Transport) Verify(ctx context.Context, cred mailer.Credential) error {
	c, err := t.client(cred)
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrVerifyFailed, err)
	}
	return c.Close()
}

// Open validates the credential with a dial round-trip and returns a
// Sender bound to it.
func (t *Transport) Open(ctx context.Context, cred mailer.Credential) (mailer.Sender, error) {
	c, err := t.client(cred)
	if err != nil {
		return nil, err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", mailer.ErrTransportFailed, err)
	}
	if err := c.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", mailer.ErrTransportFailed, err)
	}
	return &sender{transport: t, cred: cred}, nil
}

// sender delivers emails for one credential, one dial per message.
type sender struct {
	transport *Transport
	cred      mailer.Credential
}

// Send implements mailer.Sender.
func (s *sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.To == "" {
		return mailer.ErrNoRecipient
	}

	msg := mail.NewMsg()
	from := email.From
	if from == "" {
		from = s.cred.Identity
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	if email.Text != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, email.Text)
	}

	c, err := s.transport.client(s.cred)
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}
	defer c.Close() //nolint:errcheck // best effort, delivery result already known

	if err := c.Send(msg); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}
	return nil
}
