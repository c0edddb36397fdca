package service

import (
	"context"
	"sync"

	"github.com/boardhive/jobboard/models"
)

// ─────────────────────────────────────────────
// Mock: store.AccountRepository
// ─────────────────────────────────────────────

type mockAccountRepository struct {
	createFn      func(ctx context.Context, account models.Account) (models.Account, error)
	findByIDFn    func(ctx context.Context, accountID int64) (models.Account, error)
	findByEmailFn func(ctx context.Context, kind models.AccountKind, email string) (models.Account, error)
	listFn        func(ctx context.Context, kind models.AccountKind, filter map[string]string, skip, limit uint64) ([]models.Account, error)
	updateFn      func(ctx context.Context, accountID int64, update models.AccountUpdate) (models.Account, error)
	deleteFn      func(ctx context.Context, accountID int64) error
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return account, nil
}

func (m *mockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, accountID)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) FindAccountByEmail(ctx context.Context, kind models.AccountKind, email string) (models.Account, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, kind, email)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) ListAccounts(ctx context.Context, kind models.AccountKind, filter map[string]string, skip, limit uint64) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind, filter, skip, limit)
	}
	return nil, nil
}

func (m *mockAccountRepository) UpdateAccount(ctx context.Context, accountID int64, update models.AccountUpdate) (models.Account, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, accountID, update)
	}
	return models.Account{}, nil
}

func (m *mockAccountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, accountID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ListingRepository
// ─────────────────────────────────────────────

type mockListingRepository struct {
	createFn       func(ctx context.Context, listing models.Listing) (models.Listing, error)
	findByIDFn     func(ctx context.Context, listingID int64) (models.Listing, error)
	findFn         func(ctx context.Context, filter map[string]string, skip, limit uint64) ([]models.Listing, error)
	findByAuthorFn func(ctx context.Context, authorID int64) ([]models.Listing, error)
	updateFn       func(ctx context.Context, listingID, authorID int64, update models.ListingUpdate) (models.Listing, error)
	deleteFn       func(ctx context.Context, listingID, authorID int64) error
}

func (m *mockListingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	if m.createFn != nil {
		return m.createFn(ctx, listing)
	}
	return listing, nil
}

func (m *mockListingRepository) FindListingByID(ctx context.Context, listingID int64) (models.Listing, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, listingID)
	}
	return models.Listing{}, nil
}

func (m *mockListingRepository) FindListings(ctx context.Context, filter map[string]string, skip, limit uint64) ([]models.Listing, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter, skip, limit)
	}
	return nil, nil
}

func (m *mockListingRepository) FindListingsByAuthor(ctx context.Context, authorID int64) ([]models.Listing, error) {
	if m.findByAuthorFn != nil {
		return m.findByAuthorFn(ctx, authorID)
	}
	return nil, nil
}

func (m *mockListingRepository) UpdateListing(ctx context.Context, listingID, authorID int64, update models.ListingUpdate) (models.Listing, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, listingID, authorID, update)
	}
	return models.Listing{}, nil
}

func (m *mockListingRepository) DeleteListing(ctx context.Context, listingID, authorID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, listingID, authorID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: objectstore.ObjectStore
// ─────────────────────────────────────────────

type mockObjectStore struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string

	uploadFn   func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	downloadFn func(ctx context.Context, key string) ([]byte, string, error)
	deleteFn   func(ctx context.Context, key string) error
}

func (m *mockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.uploadFn != nil {
		location, err := m.uploadFn(ctx, key, data, contentType)
		if err == nil {
			m.record(&m.uploaded, key)
		}
		return location, err
	}
	m.record(&m.uploaded, key)
	return "https://cdn.example/" + key, nil
}

func (m *mockObjectStore) Download(ctx context.Context, key string) ([]byte, string, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, key)
	}
	return nil, "", nil
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	m.record(&m.deleted, key)
	return nil
}

func (m *mockObjectStore) record(list *[]string, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*list = append(*list, key)
}

// ─────────────────────────────────────────────
// Mock: Notifier
// ─────────────────────────────────────────────

type mockNotifier struct {
	mu   sync.Mutex
	jobs []models.MailJob
}

func (m *mockNotifier) Enqueue(job models.MailJob) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return true
}
