package handlers

import (
	"errors"
	"net/http"

	"github.com/sendloop/sendloop/internal/session"
	"github.com/sendloop/sendloop/pkg/recipients"
)

// maxCSVSize caps recipient uploads at 5MB.
const maxCSVSize = 5 << 20

type recipientsResponse struct {
	Recipients []recipients.Recipient `json:"recipients"`
	Count      int                    `json:"count"`
}

type uploadResponse struct {
	Count   int      `json:"count"`
	Skipped []string `json:"skipped,omitempty"`
}

type updateRequest struct {
	Recipients []recipients.Recipient `json:"recipients"`
}

func (h *Handler) listRecipients(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(session.TokenFromContext(r.Context()))
	respond(w, http.StatusOK, recipientsResponse{
		Recipients: sess.Recipients,
		Count:      len(sess.Recipients),
	})
}

// uploadRecipients imports a headerless name,email CSV file and replaces
// the session's recipient list with the valid rows.
func (h *Handler) uploadRecipients(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromContext(r.Context())
	if !h.sessions.Get(token).Verified() {
		respondError(w, http.StatusForbidden, "credential not verified")
		return
	}

	if err := r.ParseMultipartForm(maxCSVSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("csvFile")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing csvFile")
		return
	}
	defer file.Close() //nolint:errcheck

	res, err := recipients.ParseCSV(file)
	switch {
	case errors.Is(err, recipients.ErrNoRecipients):
		respondError(w, http.StatusUnprocessableEntity, "no valid recipients found, expected name,email rows")
		return
	case err != nil:
		respondError(w, http.StatusUnprocessableEntity, "failed to parse csv")
		return
	}

	h.sessions.SetRecipients(token, res.Recipients)
	respond(w, http.StatusOK, uploadResponse{
		Count:   len(res.Recipients),
		Skipped: res.Skipped,
	})
}

// updateRecipients replaces the list from an edited JSON payload,
// keeping only valid rows.
func (h *Handler) updateRecipients(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid recipient data")
		return
	}

	valid := recipients.Filter(req.Recipients)
	token := session.TokenFromContext(r.Context())
	h.sessions.SetRecipients(token, valid)

	respond(w, http.StatusOK, recipientsResponse{Recipients: valid, Count: len(valid)})
}
