package handlers

import (
	"net/http"

	"github.com/sendloop/sendloop/internal/session"
	"github.com/sendloop/sendloop/pkg/mailer"
	"github.com/sendloop/sendloop/pkg/mailmerge"
)

type composeRequest struct {
	Subject string            `json:"subject"`
	Body    string            `json:"body"`
	Format  mailer.BodyFormat `json:"format,omitempty"`
}

type composeResponse struct {
	Subject        string            `json:"subject"`
	Body           string            `json:"body"`
	Format         mailer.BodyFormat `json:"format"`
	RecipientCount int               `json:"recipient_count"`
}

func (h *Handler) getCompose(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(session.TokenFromContext(r.Context()))
	respond(w, http.StatusOK, composeResponse{
		Subject:        sess.Template.Subject,
		Body:           sess.Template.Body,
		Format:         sess.Format,
		RecipientCount: len(sess.Recipients),
	})
}

// saveCompose stores the draft template for the session.
func (h *Handler) saveCompose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Format.Valid() {
		respondError(w, http.StatusBadRequest, "unknown body format")
		return
	}

	token := session.TokenFromContext(r.Context())
	h.sessions.SetTemplate(token, mailmerge.Template{Subject: req.Subject, Body: req.Body}, req.Format)

	respond(w, http.StatusOK, map[string]bool{"saved": true})
}

// previewCompose renders the submitted template against the first
// recipient (or a sample identity). Pure read: nothing is saved and the
// job store is never touched.
func (h *Handler) previewCompose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := h.sessions.Get(session.TokenFromContext(r.Context()))
	msg := mailmerge.Preview(mailmerge.Template{Subject: req.Subject, Body: req.Body}, sess.Recipients)

	respond(w, http.StatusOK, msg)
}
