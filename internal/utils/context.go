// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/boardhive/jobboard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account
// identifier in the context. Used together with GetAccountIDFromContext for
// type-safe retrieval of the account ID from context.Context.
var AccountIDCtxKey = contextKey("accountID")

// AccountKindCtxKey is the key used to store the authenticated account kind
// in the context, written by the session middleware and read by the
// authorization gates and handlers downstream.
var AccountKindCtxKey = contextKey("accountKind")

// GetAccountIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetAccountKindFromContext retrieves the account kind from the context.
// The ok flag is false when the value is missing or has an unexpected type.
func GetAccountKindFromContext(ctx context.Context) (models.AccountKind, bool) {
	kind, ok := ctx.Value(AccountKindCtxKey).(models.AccountKind)
	return kind, ok
}
