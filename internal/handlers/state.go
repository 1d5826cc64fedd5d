package handlers

import (
	"net/http"

	"github.com/sendloop/sendloop/internal/sendjob"
	"github.com/sendloop/sendloop/internal/session"
)

type stateResponse struct {
	Identity       string           `json:"identity,omitempty"`
	Verified       bool             `json:"verified"`
	RecipientCount int              `json:"recipient_count"`
	TemplateSet    bool             `json:"template_set"`
	Job            sendjob.Snapshot `json:"job"`
}

// state reports the full session state in one read, the JSON equivalent
// of the original page gating: what is configured and how far the
// current job has come.
func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromContext(r.Context())
	sess := h.sessions.Get(token)

	respond(w, http.StatusOK, stateResponse{
		Identity:       sess.Credential.Identity,
		Verified:       sess.Verified(),
		RecipientCount: len(sess.Recipients),
		TemplateSet:    sess.Template.IsComplete(),
		Job:            h.jobs.Snapshot(token),
	})
}

// clearSession discards everything the owner holds: credential,
// recipients, template and any job, finished or not. A goroutine still
// draining a cleared job keeps running but its writes land nowhere.
func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromContext(r.Context())
	h.sessions.Clear(token)
	h.jobs.Clear(token)
	respond(w, http.StatusOK, map[string]bool{"cleared": true})
}
