package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

func TestSignUp_Returns201WithAccount(t *testing.T) {
	accounts := &mockAccountService{
		signUpFunc: func(ctx context.Context, kind models.AccountKind, input service.SignUpInput) (models.Account, error) {
			assert.Equal(t, models.AccountKindUser, kind)
			assert.Equal(t, "Ann", input.Name)
			assert.Equal(t, "ann@example.com", input.Email)
			return models.Account{AccountID: 1, Name: input.Name, Email: input.Email, Kind: kind}, nil
		},
	}
	router := newTestHandler(&service.Services{AccountService: accounts}).Init()

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name":     "Ann",
		"email":    "ann@example.com",
		"password": "Aa1_aaaa",
	}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestSignUp_ForwardsUploadedFiles(t *testing.T) {
	var gotFiles map[string]models.FileUpload
	accounts := &mockAccountService{
		signUpFunc: func(ctx context.Context, kind models.AccountKind, input service.SignUpInput) (models.Account, error) {
			gotFiles = input.Files
			return models.Account{AccountID: 2, Kind: kind}, nil
		},
	}
	router := newTestHandler(&service.Services{AccountService: accounts}).Init()

	req := multipartRequest(t, http.MethodPost, "/api/v1/companies/register", map[string]string{
		"name":     "Acme",
		"email":    "acme@example.com",
		"password": "Aa1_aaaa",
		"address":  "1 Main St",
	}, map[string][]byte{
		"logo":        []byte("logo-bytes"),
		"certificate": []byte("cert-bytes"),
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, gotFiles, 2)
	assert.Equal(t, []byte("logo-bytes"), gotFiles["logo"].Data)
	assert.Equal(t, []byte("cert-bytes"), gotFiles["certificate"].Data)
}

func TestSignUp_NonMultipartBodyReturns400(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", strings.NewReader(`{"name":"Ann"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func TestSignUp_PasswordPolicyViolationSurfacesFullMessage(t *testing.T) {
	policyErr := service.ErrPasswordPolicy
	accounts := &mockAccountService{
		signUpFunc: func(ctx context.Context, kind models.AccountKind, input service.SignUpInput) (models.Account, error) {
			return models.Account{}, policyErr
		},
	}
	router := newTestHandler(&service.Services{AccountService: accounts}).Init()

	req := multipartRequest(t, http.MethodPost, "/api/v1/users/register", map[string]string{
		"name": "Ann", "email": "ann@example.com", "password": "weak",
	}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, policyErr.Error(), resp.Message)
}

// ─────────────────────────────────────────────
// signIn
// ─────────────────────────────────────────────

func TestSignIn_SetsSessionCookieAndReturnsAccount(t *testing.T) {
	auth := &mockAuthService{
		signInFunc: func(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error) {
			assert.Equal(t, models.AccountKindUser, kind)
			return models.Account{AccountID: 5, Email: email, Kind: kind}, nil
		},
		createTokenFunc: func(ctx context.Context, account models.Account) (models.Token, error) {
			return models.Token{SignedString: "issued-token"}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"email":"ann@example.com","password":"Aa1_aaaa"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, "issued-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

func TestSignIn_UnknownEmailReturns404(t *testing.T) {
	auth := &mockAuthService{
		signInFunc: func(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error) {
			return models.Account{}, store.ErrAccountNotFound
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"Aa1_aaaa"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSignIn_WrongPasswordReturns401(t *testing.T) {
	auth := &mockAuthService{
		signInFunc: func(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error) {
			return models.Account{}, service.ErrWrongPassword
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login",
		strings.NewReader(`{"email":"ann@example.com","password":"oops"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func TestSignIn_MalformedJSONReturns400(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader("not-json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_ClearsCookieWithoutSession(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogout_IsIdempotent(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/logout", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

// ─────────────────────────────────────────────
// session
// ─────────────────────────────────────────────

func TestSession_ReturnsAuthenticatedAccount(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(9, models.AccountKindCompany)}
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			assert.Equal(t, int64(9), accountID)
			return models.Account{AccountID: accountID, Kind: models.AccountKindCompany}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/companies/session", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
}

// ─────────────────────────────────────────────
// destroySelf
// ─────────────────────────────────────────────

func TestDestroySelf_DeletesAndClearsCookie(t *testing.T) {
	var destroyedID int64
	auth := &mockAuthService{parseTokenFunc: sessionToken(3, models.AccountKindCompany)}
	accounts := &mockAccountService{
		destroyFunc: func(ctx context.Context, accountID int64) error {
			destroyedID = accountID
			return nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/v1/companies/", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), destroyedID)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

// ─────────────────────────────────────────────
// activate
// ─────────────────────────────────────────────

func TestActivate_RendersConfirmationPage(t *testing.T) {
	accounts := &mockAccountService{
		activateFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Name: "Ann", Active: true}, nil
		},
	}
	router := newTestHandler(&service.Services{AccountService: accounts}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/register/12", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Email confirmed")
	assert.Contains(t, rec.Body.String(), "Ann")
}

func TestActivate_UnknownAccountRendersFailurePage(t *testing.T) {
	accounts := &mockAccountService{
		activateFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{}, store.ErrAccountNotFound
		},
	}
	router := newTestHandler(&service.Services{AccountService: accounts}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/register/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Confirmation failed")
}

func TestActivate_MalformedIDReturns400(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/register/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// administrator account handlers
// ─────────────────────────────────────────────

func TestListAccounts_PassesFilterAndPagination(t *testing.T) {
	var gotFilter map[string]string
	var gotPage, gotLimit uint64
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		listFunc: func(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error) {
			assert.Equal(t, models.AccountKindUser, kind)
			gotFilter, gotPage, gotLimit = filter, page, limit
			return []models.Account{{AccountID: 1}}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/users/?active=true&page=2&limit=5", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"active": "true"}, gotFilter)
	assert.Equal(t, uint64(2), gotPage)
	assert.Equal(t, uint64(5), gotLimit)
}

func TestListAccounts_EmptyResultReturns404(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		listFunc: func(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error) {
			return nil, service.ErrNoAccountsFound
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAccount_HidesOtherKindsBehind404(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Kind: models.AccountKindCompany}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	// A company id requested through the users endpoint must not leak.
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/4", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAccount_ReturnsMatchingKind(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Kind: models.AccountKindUser}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/4", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateAccount_AdminSetsModerationFlags(t *testing.T) {
	var gotInput service.UpdateAccountInput
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Kind: models.AccountKindCompany, Active: true}, nil
		},
		updateFunc: func(ctx context.Context, accountID int64, input service.UpdateAccountInput) (models.Account, error) {
			gotInput = input
			return models.Account{AccountID: accountID, Active: true, AdminActive: true}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	// An administrator approves a reviewed certificate.
	req := multipartRequest(t, http.MethodPatch, "/api/v1/admin/companies/4", map[string]string{
		"admin_active": "true",
	}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSessionCookie(req))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotInput.AdminActive)
	assert.True(t, *gotInput.AdminActive)
	assert.Nil(t, gotInput.Active, "the untouched flag stays nil")
}

func TestUpdateAccount_MalformedModerationFlagReturns400(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(1, models.AccountKindAdmin)}
	accounts := &mockAccountService{
		getFunc: func(ctx context.Context, accountID int64) (models.Account, error) {
			return models.Account{AccountID: accountID, Kind: models.AccountKindUser}, nil
		},
		updateFunc: func(ctx context.Context, accountID int64, input service.UpdateAccountInput) (models.Account, error) {
			t.Fatal("update must not run for a malformed flag")
			return models.Account{}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := multipartRequest(t, http.MethodPatch, "/api/v1/admin/users/4", map[string]string{
		"active": "yes-please",
	}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSessionCookie(req))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSelf_CannotTouchModerationFlags(t *testing.T) {
	var gotInput service.UpdateAccountInput
	auth := &mockAuthService{parseTokenFunc: sessionToken(6, models.AccountKindCompany)}
	accounts := &mockAccountService{
		updateFunc: func(ctx context.Context, accountID int64, input service.UpdateAccountInput) (models.Account, error) {
			gotInput = input
			return models.Account{AccountID: accountID}, nil
		},
	}
	router := newTestHandler(&service.Services{AuthService: auth, AccountService: accounts}).Init()

	req := multipartRequest(t, http.MethodPatch, "/api/v1/companies/", map[string]string{
		"name":         "Acme Ltd",
		"admin_active": "true",
	}, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSessionCookie(req))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotInput.Name)
	assert.Nil(t, gotInput.AdminActive, "moderation flags are admin-only")
	assert.Nil(t, gotInput.Active)
}

func TestAdminRoutes_RejectNonAdminSessions(t *testing.T) {
	auth := &mockAuthService{parseTokenFunc: sessionToken(5, models.AccountKindUser)}
	router := newTestHandler(&service.Services{AuthService: auth}).Init()

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "No session", resp.Message)
}
