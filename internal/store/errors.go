package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyTaken is returned when an attempt to create an account
	// fails because another account of the same kind already uses the email.
	ErrEmailAlreadyTaken = errors.New("login exists for this email")

	// ErrAccountNotFound is returned when a query expected to match at least
	// one account record produces an empty result set.
	ErrAccountNotFound = errors.New("account does not exist")

	// ErrListingNotFound is returned when a query, update, or delete targets
	// a listing that does not exist — or, for owner-scoped operations, one
	// that is not owned by the requester. The two cases are deliberately
	// indistinguishable so that non-owners cannot probe for listing ids.
	ErrListingNotFound = errors.New("listing does not exist")

	// ErrInvalidFilter is returned when a list filter names a field that is
	// not filterable or carries a value that cannot be coerced to the
	// field's column type. It classifies caller input, not a database fault.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails in the query builder.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for infrastructure reasons.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
