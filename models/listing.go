package models

import "time"

// Listing is a job posting owned by a company account.
type Listing struct {
	// ListingID is the unique identifier of the posting,
	// assigned by the database at creation.
	ListingID int64 `json:"id"`

	// Title is the headline of the posting.
	Title string `json:"title"`

	// Position is the advertised role.
	Position string `json:"position"`

	// Requirements describes what the role demands of applicants.
	Requirements string `json:"requirements"`

	// ContactPhone is the phone number applicants should use.
	ContactPhone string `json:"contact_phone"`

	// ContactEmail is the email address applicants should use.
	ContactEmail string `json:"contact_email"`

	// MailingAddress is the postal address for applications.
	MailingAddress string `json:"mailing_address"`

	// Banner is the posting's banner image attachment.
	Banner Attachment `json:"banner"`

	// AuthorID references the company account that owns the posting.
	AuthorID int64 `json:"author_id"`

	// CreatedAt is the timestamp when the posting was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Listing model.
func (l Listing) TableName() string {
	return "listings"
}

// ListingUpdate represents a partial update of a single listing.
// Only non-nil fields are applied.
type ListingUpdate struct {
	Title          *string     `json:"title,omitempty"`
	Position       *string     `json:"position,omitempty"`
	Requirements   *string     `json:"requirements,omitempty"`
	ContactPhone   *string     `json:"contact_phone,omitempty"`
	ContactEmail   *string     `json:"contact_email,omitempty"`
	MailingAddress *string     `json:"mailing_address,omitempty"`
	Banner         *Attachment `json:"banner,omitempty"`
}

// IsZero reports whether the update carries no changes at all.
func (u ListingUpdate) IsZero() bool {
	return u.Title == nil && u.Position == nil && u.Requirements == nil &&
		u.ContactPhone == nil && u.ContactEmail == nil &&
		u.MailingAddress == nil && u.Banner == nil
}
