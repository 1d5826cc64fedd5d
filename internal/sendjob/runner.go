package sendjob

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendloop/sendloop/pkg/mailer"
	"github.com/sendloop/sendloop/pkg/mailmerge"
	"github.com/sendloop/sendloop/pkg/recipients"
)

// defaultDelay throttles outbound volume between consecutive sends.
const defaultDelay = time.Second

// Input is the frozen data a job runs with. It is snapshotted at
// creation time: later edits to the owner's list or template do not
// reach a job in flight.
type Input struct {
	Recipients []recipients.Recipient
	Template   mailmerge.Template
	Format     mailer.BodyFormat
	Credential mailer.Credential
}

// Runner executes send jobs sequentially against a mail transport.
type Runner struct {
	store     *Store
	transport mailer.Transport
	renderer  *mailer.BodyRenderer
	delay     time.Duration
	log       *slog.Logger
}

// Option configures the Runner.
type Option func(*Runner)

// WithDelay sets the inter-send delay.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRunner creates a Runner dispatching through the given transport.
func NewRunner(store *Store, transport mailer.Transport, opts ...Option) *Runner {
	r := &Runner{
		store:     store,
		transport: transport,
		renderer:  mailer.NewBodyRenderer(),
		delay:     defaultDelay,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start creates a job for owner and dispatches it on a new goroutine.
// Returns ErrAlreadySending when the owner already has a job in flight;
// the running job is left untouched. This is the only coupling between
// the request that starts a send and the goroutine that performs it;
// everything observable afterwards goes through the store.
func (r *Runner) Start(owner string, in Input) error {
	h, err := r.store.Create(owner, len(in.Recipients))
	if err != nil {
		return err
	}
	go r.run(context.Background(), owner, h, in)
	return nil
}

// run drains the job sequentially. Exactly one goroutine executes run
// per job. The loop has two suspension points only: awaiting the
// transport for the current recipient, and the fixed inter-send delay.
func (r *Runner) run(ctx context.Context, owner string, h *Handle, in Input) {
	log := r.log.With(slog.String("owner", owner), slog.Int("total", len(in.Recipients)))

	sender, err := r.transport.Open(ctx, in.Credential)
	if err != nil {
		log.Error("transport open failed", slog.Any("error", err))
		h.Fail(err.Error())
		return
	}

	log.Info("send job started")

	for i, rec := range in.Recipients {
		h.SetCurrent(rec.Address)

		msg := mailmerge.Render(in.Template, rec)
		html, text, err := r.renderer.Render(msg.Body, in.Format)
		if err != nil {
			h.RecordFailed(rec.Address, err.Error())
		} else {
			email := &mailer.Email{
				From:    in.Credential.Identity,
				To:      rec.Address,
				Subject: msg.Subject,
				HTML:    html,
				Text:    text,
			}
			if err := sender.Send(ctx, email); err != nil {
				log.Warn("delivery failed",
					slog.String("address", rec.Address),
					slog.Any("error", err))
				h.RecordFailed(rec.Address, err.Error())
			} else {
				h.RecordSent()
			}
		}

		if i < len(in.Recipients)-1 {
			time.Sleep(r.delay)
		}
	}

	h.Complete()
	log.Info("send job completed")
}
