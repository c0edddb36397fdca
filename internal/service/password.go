package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrPasswordPolicy marks password policy violations. The wrapped message
// lists every violated rule on its own line so API clients can show the full
// checklist at once.
var ErrPasswordPolicy = errors.New("password policy violation")

const (
	passwordMinLength = 8
	passwordMaxLength = 16
)

// ValidatePassword checks the candidate password against the account password
// policy: 8 to 16 characters with at least one digit, one uppercase letter,
// one lowercase letter, and one symbol or underscore.
func ValidatePassword(password string) error {
	var violations []string

	runes := []rune(password)
	if len(runes) < passwordMinLength || len(runes) > passwordMaxLength {
		violations = append(violations,
			fmt.Sprintf("password must be between %d and %d characters long", passwordMinLength, passwordMaxLength))
	}

	var hasDigit, hasUpper, hasLower, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case r == '_' || unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	if !hasDigit {
		violations = append(violations, "password must contain at least one digit")
	}
	if !hasUpper {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if !hasSymbol {
		violations = append(violations, "password must contain at least one symbol or underscore")
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w:\n%s", ErrPasswordPolicy, strings.Join(violations, "\n"))
	}

	return nil
}
