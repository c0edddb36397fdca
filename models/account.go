package models

import "time"

// AccountKind discriminates the three account variants supported by the
// platform. The kind is embedded in session tokens and gates access to
// role-restricted routes.
type AccountKind string

const (
	// AccountKindUser is a job-seeking user account.
	AccountKindUser AccountKind = "user"

	// AccountKindCompany is a hiring company account.
	AccountKindCompany AccountKind = "company"

	// AccountKindAdmin is an administrator account.
	AccountKindAdmin AccountKind = "admin"
)

// Valid reports whether k is one of the known account kinds.
func (k AccountKind) Valid() bool {
	switch k {
	case AccountKindUser, AccountKindCompany, AccountKindAdmin:
		return true
	}
	return false
}

// Account represents any authenticatable identity: a user, a company, or an
// administrator. Variant-specific fields (Address, Logo, Certificate,
// ProfilePic) are populated only for the kinds that carry them.
//
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the unique identifier of the account,
	// assigned by the database at creation and immutable afterwards.
	AccountID int64 `json:"id"`

	// Kind discriminates the account variant.
	Kind AccountKind `json:"kind"`

	// Name is the display name of the user or the company.
	Name string `json:"name"`

	// Email is the sign-in address. Unique among accounts of the same kind.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// The plaintext password is never stored and the hash is never serialised.
	PasswordHash string `json:"-"`

	// Address is the physical address of a company. Empty for other kinds.
	Address string `json:"address,omitempty"`

	// Active reports whether the account confirmed its email address.
	// Defaults to false; flipped by the activation endpoint.
	Active bool `json:"active"`

	// AdminActive reports whether an administrator reviewed the account's
	// submitted credentials (e.g. a company certificate). Secondary gate,
	// independent from Active.
	AdminActive bool `json:"admin_active"`

	// ProfilePic is the user's avatar attachment. Optional.
	ProfilePic *Attachment `json:"profile_pic,omitempty"`

	// Logo is the company's avatar attachment. Required for companies.
	Logo *Attachment `json:"logo,omitempty"`

	// Certificate is the company's registration certificate attachment.
	// Required for companies.
	Certificate *Attachment `json:"certificate,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountUpdate represents a partial update of a single account.
// Only non-nil fields are applied.
type AccountUpdate struct {
	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Email replaces the sign-in address when non-nil.
	Email *string `json:"email,omitempty"`

	// PasswordHash replaces the stored bcrypt hash when non-nil.
	// Must already be hashed; the store never sees plaintext.
	PasswordHash *string `json:"-"`

	// Address replaces the company address when non-nil.
	Address *string `json:"address,omitempty"`

	// Active replaces the email-confirmation flag when non-nil.
	Active *bool `json:"active,omitempty"`

	// AdminActive replaces the admin-review flag when non-nil.
	AdminActive *bool `json:"admin_active,omitempty"`

	// ProfilePic replaces the avatar attachment reference when non-nil.
	ProfilePic *Attachment `json:"profile_pic,omitempty"`

	// Logo replaces the company logo attachment reference when non-nil.
	Logo *Attachment `json:"logo,omitempty"`

	// Certificate replaces the certificate attachment reference when non-nil.
	Certificate *Attachment `json:"certificate,omitempty"`
}

// IsZero reports whether the update carries no changes at all.
func (u AccountUpdate) IsZero() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil &&
		u.Address == nil && u.Active == nil && u.AdminActive == nil &&
		u.ProfilePic == nil && u.Logo == nil && u.Certificate == nil
}
