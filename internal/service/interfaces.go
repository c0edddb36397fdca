package service

import (
	"context"

	"github.com/boardhive/jobboard/models"
)

// SignUpInput carries the registration form of a new account. Files holds the
// uploaded attachments keyed by form field name (profile_pic, logo,
// certificate); which fields are accepted and required depends on the account
// kind.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Files    map[string]models.FileUpload
}

// UpdateAccountInput carries a partial account update. Nil pointers mean
// "leave unchanged". Files replaces the named attachments. Active and
// AdminActive are the moderation flags; only the administrator endpoints
// populate them.
type UpdateAccountInput struct {
	Name        *string
	Email       *string
	Password    *string
	Address     *string
	Active      *bool
	AdminActive *bool
	Files       map[string]models.FileUpload
}

// ListingInput carries the creation form of a job listing. All text fields
// and the banner are required.
type ListingInput struct {
	Title          string
	Position       string
	Requirements   string
	ContactPhone   string
	ContactEmail   string
	MailingAddress string
	Banner         *models.FileUpload
}

// UpdateListingInput carries a partial listing update. Nil pointers mean
// "leave unchanged"; a non-nil Banner replaces the stored banner.
type UpdateListingInput struct {
	Title          *string
	Position       *string
	Requirements   *string
	ContactPhone   *string
	ContactEmail   *string
	MailingAddress *string
	Banner         *models.FileUpload
}

// AuthService handles credential verification and session token lifecycle.
type AuthService interface {
	SignIn(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService manages the lifecycle of every account kind. The kind
// parameter selects the kind descriptor that drives validation and attachment
// handling.
type AccountService interface {
	SignUp(ctx context.Context, kind models.AccountKind, input SignUpInput) (models.Account, error)
	Activate(ctx context.Context, accountID int64) (models.Account, error)
	Get(ctx context.Context, accountID int64) (models.Account, error)
	List(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error)
	Update(ctx context.Context, accountID int64, input UpdateAccountInput) (models.Account, error)
	Destroy(ctx context.Context, accountID int64) error
}

// ListingService manages job listings. An authorID of 0 on Update/Destroy
// bypasses the ownership constraint (admin moderation).
type ListingService interface {
	Create(ctx context.Context, authorID int64, input ListingInput) (models.Listing, error)
	ListPublic(ctx context.Context, filter map[string]string, page, limit uint64) ([]models.Listing, error)
	GetOwn(ctx context.Context, authorID int64) ([]models.Listing, error)
	Update(ctx context.Context, listingID, authorID int64, input UpdateListingInput) (models.Listing, error)
	Destroy(ctx context.Context, listingID, authorID int64) error
}

// Notifier queues an outbound message for background delivery. The returned
// flag reports whether the message was accepted; a dropped message never
// fails the operation that produced it.
type Notifier interface {
	Enqueue(job models.MailJob) bool
}
