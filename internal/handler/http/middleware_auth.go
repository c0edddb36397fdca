package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "jwt_auth"

// auth builds an HTTP middleware that enforces cookie-based session
// authentication and role gating.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseToken], checks that the token's account kind is
// in the admitted set, and on success stores the account id and kind in the
// request context under [utils.AccountIDCtxKey] and [utils.AccountKindCtxKey]
// before delegating to the next handler.
//
// Every rejection (missing cookie, invalid or expired token, kind not
// admitted) answers 401 with the same "No session" envelope, so a caller
// cannot probe which condition failed.
func (h *Handler) auth(kinds ...models.AccountKind) func(http.Handler) http.Handler {
	admitted := make(map[models.AccountKind]bool, len(kinds))
	for _, kind := range kinds {
		admitted[kind] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || cookie.Value == "" {
				log.Warn().Msg("session cookie absent")
				h.writeError(w, r, ErrNoSession)
				return
			}

			ctx := r.Context()
			token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
			if err != nil {
				log.Warn().Err(err).Msg("session token rejected")
				h.writeError(w, r, fmt.Errorf("%w: %w", ErrNoSession, err))
				return
			}

			if !admitted[token.Kind] {
				log.Warn().Str("kind", string(token.Kind)).Msg("account kind not admitted for route")
				h.writeError(w, r, ErrNoSession)
				return
			}

			// Store the authenticated identity in the context so that
			// downstream handlers can use it without re-parsing the token.
			ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)
			ctx = context.WithValue(ctx, utils.AccountKindCtxKey, token.Kind)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
