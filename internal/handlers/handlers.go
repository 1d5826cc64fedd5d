// Package handlers exposes the operator-facing HTTP surface: credential
// verification, recipient import, composition, send control and the
// live progress stream. Handlers are thin: they validate input, hand
// data to the core and translate core errors to HTTP codes.
package handlers

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/sendloop/sendloop/internal/progress"
	"github.com/sendloop/sendloop/internal/sendjob"
	"github.com/sendloop/sendloop/internal/session"
	"github.com/sendloop/sendloop/pkg/mailer"
)

// Handler carries the dependencies of the API surface.
type Handler struct {
	sessions  *session.Manager
	jobs      *sendjob.Store
	runner    *sendjob.Runner
	streamer  *progress.Streamer
	transport mailer.Transport
	log       *slog.Logger
}

// New creates the API handler with injected dependencies.
func New(
	sessions *session.Manager,
	jobs *sendjob.Store,
	runner *sendjob.Runner,
	streamer *progress.Streamer,
	transport mailer.Transport,
	log *slog.Logger,
) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		sessions:  sessions,
		jobs:      jobs,
		runner:    runner,
		streamer:  streamer,
		transport: transport,
		log:       log,
	}
}

// Routes declares the API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.state)

		r.Post("/smtp/verify", h.verifyCredential)

		r.Get("/recipients", h.listRecipients)
		r.Post("/recipients", h.updateRecipients)
		r.Post("/recipients/upload", h.uploadRecipients)

		r.Get("/compose", h.getCompose)
		r.Post("/compose", h.saveCompose)
		r.Post("/compose/preview", h.previewCompose)

		r.Post("/send/start", h.startSend)
		r.Get("/send/progress", h.sendProgress)

		r.Post("/session/clear", h.clearSession)
	})
}
