package handlers

import (
	"net/http"

	"github.com/sendloop/sendloop/internal/session"
	"github.com/sendloop/sendloop/pkg/mailer"
)

type verifyRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

type verifyResponse struct {
	Identity string `json:"identity"`
	Verified bool   `json:"verified"`
}

// verifyCredential checks the submitted credential against the mail
// provider and, on success, stores it verified in the session. Only a
// verified credential can later start a job.
func (h *Handler) verifyCredential(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cred := mailer.Credential{Identity: req.Identity, Secret: req.Secret}
	if err := h.transport.Verify(r.Context(), cred); err != nil {
		h.log.Warn("credential verification failed", "identity", req.Identity, "error", err)
		respondError(w, http.StatusUnprocessableEntity, "credential verification failed")
		return
	}

	cred.Verified = true
	token := session.TokenFromContext(r.Context())
	h.sessions.SetCredential(token, cred)

	respond(w, http.StatusOK, verifyResponse{Identity: cred.Identity, Verified: true})
}
