// Package resend implements mailer.Transport using the Resend API.
//
// The credential secret is the Resend API key and the identity is the
// From address. Establishing the transport is a local operation, so jobs
// running over Resend can only fail per recipient, never fatally.
package resend

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/sendloop/sendloop/pkg/mailer"
)

// Transport implements mailer.Transport backed by Resend.
type Transport struct{}

// New creates a Resend transport.
func New() *Transport {
	return &Transport{}
}

// Verify performs a local sanity check of the credential. Resend exposes
// no auth-only endpoint, so the key is validated on first delivery.
func (t *Transport) Verify(_ context.Context, cred mailer.Credential) error {
	if cred.Identity == "" || cred.Secret == "" {
		return mailer.ErrMissingCredential
	}
	if !strings.HasPrefix(cred.Secret, "re_") {
		return fmt.Errorf("%w: secret is not a resend api key", mailer.ErrVerifyFailed)
	}
	return nil
}

// Open returns a Sender bound to the credential's API key.
func (t *Transport) Open(ctx context.Context, cred mailer.Credential) (mailer.Sender, error) {
	if err := t.Verify(ctx, cred); err != nil {
		return nil, err
	}
	return &sender{client: resend.NewClient(cred.Secret), from: cred.Identity}, nil
}

// sender delivers emails through the Resend API.
type sender struct {
	client *resend.Client
	from   string
}

// Send implements mailer.Sender.
func (s *sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.To == "" {
		return mailer.ErrNoRecipient
	}

	from := email.From
	if from == "" {
		from = s.from
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}
	return nil
}
