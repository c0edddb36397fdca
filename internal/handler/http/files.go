package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// downloadFile streams a stored attachment back to the client. The key is the
// opaque storage key minted at upload time; unknown keys answer 404.
func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	data, contentType, err := h.blobs.Download(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Header already sent, nothing left to answer.
		return
	}
}
