package handlers

import (
	"errors"
	"net/http"

	"github.com/sendloop/sendloop/internal/sendjob"
	"github.com/sendloop/sendloop/internal/session"
)

// startSend snapshots the session state into a new job and kicks off
// the background dispatch. At most one job per owner may be in flight.
func (h *Handler) startSend(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromContext(r.Context())
	sess := h.sessions.Get(token)

	switch {
	case !sess.Verified():
		respondError(w, http.StatusForbidden, "credential not verified")
		return
	case len(sess.Recipients) == 0:
		respondError(w, http.StatusBadRequest, "recipient list is empty")
		return
	case !sess.Template.IsComplete():
		respondError(w, http.StatusBadRequest, "subject and body are required")
		return
	}

	err := h.runner.Start(token, sendjob.Input{
		Recipients: sess.Recipients,
		Template:   sess.Template,
		Format:     sess.Format,
		Credential: sess.Credential,
	})
	if errors.Is(err, sendjob.ErrAlreadySending) {
		respondError(w, http.StatusConflict, "already sending")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to start send")
		return
	}

	respond(w, http.StatusAccepted, map[string]bool{"started": true})
}

// sendProgress streams job snapshots to the observer over SSE. The
// observer need not be the connection that started the job.
func (h *Handler) sendProgress(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromContext(r.Context())
	if err := h.streamer.Stream(w, r, token); err != nil {
		h.log.Error("progress stream failed", "error", err)
	}
}
