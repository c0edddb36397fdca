package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService through optional function
// fields. Unset fields answer with zero values.
type mockAuthService struct {
	signInFunc      func(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error)
	createTokenFunc func(ctx context.Context, account models.Account) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignIn(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, kind, email, password)
	}
	return models.Account{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	if m.createTokenFunc != nil {
		return m.createTokenFunc(ctx, account)
	}
	return models.Token{SignedString: "signed-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFunc != nil {
		return m.parseTokenFunc(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// mockAccountService implements service.AccountService through optional
// function fields.
type mockAccountService struct {
	signUpFunc   func(ctx context.Context, kind models.AccountKind, input service.SignUpInput) (models.Account, error)
	activateFunc func(ctx context.Context, accountID int64) (models.Account, error)
	getFunc      func(ctx context.Context, accountID int64) (models.Account, error)
	listFunc     func(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error)
	updateFunc   func(ctx context.Context, accountID int64, input service.UpdateAccountInput) (models.Account, error)
	destroyFunc  func(ctx context.Context, accountID int64) error
}

func (m *mockAccountService) SignUp(ctx context.Context, kind models.AccountKind, input service.SignUpInput) (models.Account, error) {
	if m.signUpFunc != nil {
		return m.signUpFunc(ctx, kind, input)
	}
	return models.Account{}, nil
}

func (m *mockAccountService) Activate(ctx context.Context, accountID int64) (models.Account, error) {
	if m.activateFunc != nil {
		return m.activateFunc(ctx, accountID)
	}
	return models.Account{AccountID: accountID, Active: true}, nil
}

func (m *mockAccountService) Get(ctx context.Context, accountID int64) (models.Account, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, accountID)
	}
	return models.Account{AccountID: accountID}, nil
}

func (m *mockAccountService) List(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, kind, filter, page, limit)
	}
	return []models.Account{}, nil
}

func (m *mockAccountService) Update(ctx context.Context, accountID int64, input service.UpdateAccountInput) (models.Account, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, accountID, input)
	}
	return models.Account{AccountID: accountID}, nil
}

func (m *mockAccountService) Destroy(ctx context.Context, accountID int64) error {
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, accountID)
	}
	return nil
}

// mockListingService implements service.ListingService through optional
// function fields.
type mockListingService struct {
	createFunc     func(ctx context.Context, authorID int64, input service.ListingInput) (models.Listing, error)
	listPublicFunc func(ctx context.Context, filter map[string]string, page, limit uint64) ([]models.Listing, error)
	getOwnFunc     func(ctx context.Context, authorID int64) ([]models.Listing, error)
	updateFunc     func(ctx context.Context, listingID, authorID int64, input service.UpdateListingInput) (models.Listing, error)
	destroyFunc    func(ctx context.Context, listingID, authorID int64) error
}

func (m *mockListingService) Create(ctx context.Context, authorID int64, input service.ListingInput) (models.Listing, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, authorID, input)
	}
	return models.Listing{}, nil
}

func (m *mockListingService) ListPublic(ctx context.Context, filter map[string]string, page, limit uint64) ([]models.Listing, error) {
	if m.listPublicFunc != nil {
		return m.listPublicFunc(ctx, filter, page, limit)
	}
	return []models.Listing{}, nil
}

func (m *mockListingService) GetOwn(ctx context.Context, authorID int64) ([]models.Listing, error) {
	if m.getOwnFunc != nil {
		return m.getOwnFunc(ctx, authorID)
	}
	return []models.Listing{}, nil
}

func (m *mockListingService) Update(ctx context.Context, listingID, authorID int64, input service.UpdateListingInput) (models.Listing, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, listingID, authorID, input)
	}
	return models.Listing{ListingID: listingID}, nil
}

func (m *mockListingService) Destroy(ctx context.Context, listingID, authorID int64) error {
	if m.destroyFunc != nil {
		return m.destroyFunc(ctx, listingID, authorID)
	}
	return nil
}

// mockObjectStore implements objectstore.ObjectStore for download tests.
type mockObjectStore struct {
	uploadFunc   func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	downloadFunc func(ctx context.Context, key string) ([]byte, string, error)
	deleteFunc   func(ctx context.Context, key string) error
}

func (m *mockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, key, data, contentType)
	}
	return "https://cdn.example/" + key, nil
}

func (m *mockObjectStore) Download(ctx context.Context, key string) ([]byte, string, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, key)
	}
	return []byte("blob"), "image/png", nil
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func newTestHandler(svcs *service.Services) *Handler {
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.AccountService == nil {
		svcs.AccountService = &mockAccountService{}
	}
	if svcs.ListingService == nil {
		svcs.ListingService = &mockListingService{}
	}

	return NewHandler(svcs, &mockObjectStore{}, config.App{Version: "test-version"}, logger.Nop())
}

// sessionToken builds a ParseToken func answering every token with the given
// identity.
func sessionToken(accountID int64, kind models.AccountKind) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(ctx context.Context, tokenString string) (models.Token, error) {
		return models.Token{AccountID: accountID, Kind: kind}, nil
	}
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-token"})
	return req
}

// multipartRequest builds a multipart/form-data request from text fields and
// in-memory file payloads keyed by form field name.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, value := range fields {
		require.NoError(t, mw.WriteField(field, value))
	}
	for field, data := range files {
		fw, err := mw.CreateFormFile(field, field+".bin")
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
