package http

import (
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// activeCheck is an HTTP middleware gating routes on the account's activation
// state. It applies to user accounts only: an unconfirmed email rejects with
// "Email unverified", then a pending administrator review rejects with
// "Certificate still processing", in that order. Other account kinds pass
// through unconditionally.
//
// Must run after auth: it reads the identity from the request context and
// looks the account up to get its current flags.
func (h *Handler) activeCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		kind, ok := utils.GetAccountKindFromContext(ctx)
		if !ok {
			log.Error().Msg("activeCheck reached without authenticated kind")
			h.writeError(w, r, ErrNoSession)
			return
		}
		if kind != models.AccountKindUser {
			next.ServeHTTP(w, r)
			return
		}

		accountID, ok := utils.GetAccountIDFromContext(ctx)
		if !ok {
			log.Error().Msg("activeCheck reached without authenticated account id")
			h.writeError(w, r, ErrNoSession)
			return
		}

		account, err := h.services.AccountService.Get(ctx, accountID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if !account.Active {
			h.writeError(w, r, service.ErrEmailUnverified)
			return
		}
		if !account.AdminActive {
			h.writeError(w, r, service.ErrCertificateProcessing)
			return
		}

		next.ServeHTTP(w, r)
	})
}
