package store

import (
	"context"

	"github.com/boardhive/jobboard/models"
)

// AccountRepository is the persistence port for accounts of every kind.
// Implementations must map driver-level failures to the sentinel errors
// declared in this package.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)
	FindAccountByEmail(ctx context.Context, kind models.AccountKind, email string) (models.Account, error)
	ListAccounts(ctx context.Context, kind models.AccountKind, filter map[string]string, skip, limit uint64) ([]models.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, update models.AccountUpdate) (models.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// ListingRepository is the persistence port for job listings.
//
// UpdateListing and DeleteListing accept an optional authorID constraint:
// when authorID is non-zero the operation only matches listings owned by
// that account, so a non-owner receives [ErrListingNotFound].
type ListingRepository interface {
	CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error)
	FindListingByID(ctx context.Context, listingID int64) (models.Listing, error)
	FindListings(ctx context.Context, filter map[string]string, skip, limit uint64) ([]models.Listing, error)
	FindListingsByAuthor(ctx context.Context, authorID int64) ([]models.Listing, error)
	UpdateListing(ctx context.Context, listingID, authorID int64, update models.ListingUpdate) (models.Listing, error)
	DeleteListing(ctx context.Context, listingID, authorID int64) error
}
