package store

import (
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
)

const (
	accountColumns = `account_id, kind, name, email, password_hash, address, active, admin_active,
    profile_pic_key, profile_pic_link, logo_key, logo_link, certificate_key, certificate_link, created_at`

	createAccount = `INSERT INTO accounts (kind, name, email, password_hash, address, active, admin_active,
    profile_pic_key, profile_pic_link, logo_key, logo_link, certificate_key, certificate_link)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    RETURNING ` + accountColumns + `;`

	findAccountByID = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE account_id = $1;`

	findAccountByEmail = `SELECT ` + accountColumns + `
    FROM accounts
    WHERE kind = $1 AND email = $2;`

	deleteAccount = `DELETE FROM accounts
    WHERE account_id = $1;`

	listingColumns = `listing_id, title, position, requirements, contact_phone, contact_email,
    mailing_address, banner_key, banner_link, author_id, created_at`

	createListing = `INSERT INTO listings (title, position, requirements, contact_phone, contact_email,
    mailing_address, banner_key, banner_link, author_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + listingColumns + `;`

	findListingByID = `SELECT ` + listingColumns + `
    FROM listings
    WHERE listing_id = $1;`

	findListingsByAuthor = `SELECT ` + listingColumns + `
    FROM listings
    WHERE author_id = $1
    ORDER BY listing_id;`
)

// filterableAccountColumns maps the account filter fields accepted from the
// API to their column type, so that filter values can be coerced before they
// reach the query builder. Fields outside this map are rejected.
var filterableAccountColumns = map[string]string{
	"name":         "text",
	"email":        "text",
	"address":      "text",
	"active":       "bool",
	"admin_active": "bool",
}

// filterableListingColumns is the listing counterpart of
// [filterableAccountColumns].
var filterableListingColumns = map[string]string{
	"title":           "text",
	"position":        "text",
	"requirements":    "text",
	"contact_phone":   "text",
	"contact_email":   "text",
	"mailing_address": "text",
	"author_id":       "int",
}

// filterToEq converts a field→value filter received from the API into a
// squirrel equality matcher, coercing values according to the allowed-column
// table. An unknown field or an uncoercible value fails the whole filter with
// [ErrInvalidFilter], since silently ignoring it would return a broader
// result set than requested.
func filterToEq(filter map[string]string, allowed map[string]string) (sq.Eq, error) {
	eq := sq.Eq{}
	for field, value := range filter {
		columnType, ok := allowed[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter field %q", ErrInvalidFilter, field)
		}

		switch columnType {
		case "bool":
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("%w: filter field %q wants a boolean", ErrInvalidFilter, field)
			}
			eq[field] = parsed
		case "int":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: filter field %q wants an integer", ErrInvalidFilter, field)
			}
			eq[field] = parsed
		default:
			eq[field] = value
		}
	}

	return eq, nil
}
