// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// signUp returns the registration handler for the given account kind. The
// request is a multipart form carrying the text fields plus the attachments
// the kind accepts (profile picture for users, logo and certificate for
// companies).
func (h *Handler) signUp(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: multipart form expected", service.ErrInvalidDataProvided))
			return
		}

		input := service.SignUpInput{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
			Address:  r.FormValue("address"),
			Files:    make(map[string]models.FileUpload),
		}

		desc, ok := service.DescriptorFor(kind)
		if !ok {
			h.writeError(w, r, service.ErrInvalidDataProvided)
			return
		}
		for _, spec := range desc.Attachments {
			upload, err := readFileUpload(r, spec.Field)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			if upload != nil {
				input.Files[spec.Field] = *upload
			}
		}

		account, err := h.services.AccountService.SignUp(r.Context(), kind, input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Info().Int64("account_id", account.AccountID).Str("kind", string(kind)).Msg("account registered")
		h.writeSuccess(w, r, http.StatusCreated, "Account registered, confirmation email sent", account)
	}
}

// signInRequest is the JSON body of a sign-in call.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signIn returns the credential check handler for the given account kind. On
// success it issues a session token and sets it as an HTTP-only cookie.
func (h *Handler) signIn(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var creds signInRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidDataProvided))
			return
		}

		ctx := r.Context()
		account, err := h.services.AuthService.SignIn(ctx, kind, creds.Email, creds.Password)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		token, err := h.services.AuthService.CreateToken(ctx, account)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token.SignedString,
			Path:     "/",
			HttpOnly: true,
		})

		log.Info().Int64("account_id", account.AccountID).Str("kind", string(kind)).Msg("signed in")
		h.writeSuccess(w, r, http.StatusOK, "Signed in", account)
	}
}

// logout clears the session cookie. It requires no authentication and always
// answers 200, so repeated calls are harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	h.writeSuccess(w, r, http.StatusOK, "Signed out", nil)
}

// session returns the account behind the current session cookie.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	account, err := h.services.AccountService.Get(ctx, accountID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Session active", account)
}

// updateSelf applies a partial update to the calling account. Fields absent
// from the multipart form stay unchanged.
func (h *Handler) updateSelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}
	kind, ok := utils.GetAccountKindFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	input, err := h.parseAccountUpdate(r, kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.Update(ctx, accountID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Account updated", account)
}

// destroySelf deletes the calling account and clears its session cookie.
func (h *Handler) destroySelf(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	if err := h.services.AccountService.Destroy(ctx, accountID); err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	logger.FromRequest(r).Info().Int64("account_id", accountID).Msg("account deleted")
	h.writeSuccess(w, r, http.StatusOK, "Account deleted", nil)
}

// activate confirms an account's email address from the emailed link and
// renders a small HTML page instead of the JSON envelope, since the request
// comes from a browser.
func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, err := idURLParam(r, "accountID")
	if err != nil {
		h.renderActivationPage(w, r, http.StatusBadRequest, activationPageData{
			Message: "The confirmation link is malformed.",
		})
		return
	}

	account, err := h.services.AccountService.Activate(r.Context(), accountID)
	if err != nil {
		log.Warn().Err(err).Int64("account_id", accountID).Msg("activation failed")
		h.renderActivationPage(w, r, statusFromError(err), activationPageData{
			Message: "We could not confirm this account. The link may be stale.",
		})
		return
	}

	log.Info().Int64("account_id", account.AccountID).Msg("account activated")
	h.renderActivationPage(w, r, http.StatusOK, activationPageData{
		Confirmed: true,
		Name:      account.Name,
	})
}

// ─────────────────────────── administrator handlers ───────────────────────────

// listAccounts returns the admin handler listing accounts of one kind with
// optional field filters and pagination taken from the query string.
func (h *Handler) listAccounts(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, page, limit, err := parseListQuery(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		accounts, err := h.services.AccountService.List(r.Context(), kind, filter, page, limit)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		h.writeSuccess(w, r, http.StatusOK, "Accounts found", accounts)
	}
}

// getAccount returns the admin handler fetching one account by id. The route
// is kind-scoped: asking the users endpoint for a company id answers 404.
func (h *Handler) getAccount(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := h.fetchKindScoped(r, kind)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		h.writeSuccess(w, r, http.StatusOK, "Account found", account)
	}
}

// updateAccount returns the admin handler applying a partial update to an
// account of the given kind. Unlike the self-service update it also accepts
// the active and admin_active moderation flags, so an administrator can
// approve a reviewed certificate or revoke a confirmation.
func (h *Handler) updateAccount(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := h.fetchKindScoped(r, kind)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		input, err := h.parseAccountUpdate(r, kind)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if input.Active, err = formBoolPtr(r, "active"); err != nil {
			h.writeError(w, r, err)
			return
		}
		if input.AdminActive, err = formBoolPtr(r, "admin_active"); err != nil {
			h.writeError(w, r, err)
			return
		}

		account, err := h.services.AccountService.Update(r.Context(), current.AccountID, input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		h.writeSuccess(w, r, http.StatusOK, "Account updated", account)
	}
}

// destroyAccount returns the admin handler deleting an account of the given kind.
func (h *Handler) destroyAccount(kind models.AccountKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := h.fetchKindScoped(r, kind)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := h.services.AccountService.Destroy(r.Context(), current.AccountID); err != nil {
			h.writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Info().Int64("account_id", current.AccountID).Msg("account deleted by administrator")
		h.writeSuccess(w, r, http.StatusOK, "Account deleted", nil)
	}
}

// fetchKindScoped resolves the accountID URL parameter to an account and
// hides accounts of other kinds behind a not-found answer.
func (h *Handler) fetchKindScoped(r *http.Request, kind models.AccountKind) (models.Account, error) {
	accountID, err := idURLParam(r, "accountID")
	if err != nil {
		return models.Account{}, err
	}

	account, err := h.services.AccountService.Get(r.Context(), accountID)
	if err != nil {
		return models.Account{}, err
	}
	if account.Kind != kind {
		return models.Account{}, store.ErrAccountNotFound
	}

	return account, nil
}

// parseAccountUpdate reads a partial account update from a multipart form.
// Text fields map to pointers so that absent fields are distinguishable from
// fields submitted empty. The moderation flags are not read here; a
// self-service update never changes them.
func (h *Handler) parseAccountUpdate(r *http.Request, kind models.AccountKind) (service.UpdateAccountInput, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return service.UpdateAccountInput{}, fmt.Errorf("%w: multipart form expected", service.ErrInvalidDataProvided)
	}

	input := service.UpdateAccountInput{
		Name:     formValuePtr(r, "name"),
		Email:    formValuePtr(r, "email"),
		Password: formValuePtr(r, "password"),
		Address:  formValuePtr(r, "address"),
		Files:    make(map[string]models.FileUpload),
	}

	desc, ok := service.DescriptorFor(kind)
	if !ok {
		return service.UpdateAccountInput{}, service.ErrInvalidDataProvided
	}
	for _, spec := range desc.Attachments {
		upload, err := readFileUpload(r, spec.Field)
		if err != nil {
			return service.UpdateAccountInput{}, err
		}
		if upload != nil {
			input.Files[spec.Field] = *upload
		}
	}

	return input, nil
}
