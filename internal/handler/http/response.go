package http

import (
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// writeSuccess emits the JSON success envelope with the given status code.
func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{
		Success: true,
		Status:  status,
		Message: message,
		Data:    data,
	}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing success response")
	}
}

// writeError classifies err through the error status map and emits the JSON
// failure envelope. Server faults are reported with a generic message; the
// underlying error is logged with request context only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with server fault")
	} else {
		log.Warn().Err(err).Msg("request rejected")
	}

	if _, err := utils.WriteJSON(w, models.Response{
		Success: false,
		Status:  status,
		Message: messageFromError(err, status),
	}, status); err != nil {
		log.Err(err).Msg("error writing failure response")
	}
}
