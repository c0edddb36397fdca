package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/internal/utils"
	"github.com/boardhive/jobboard/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the account repository with bcrypt and
// handles the JWT session token lifecycle.
type authService struct {
	// accountRepository is the data-access layer used to look up accounts.
	accountRepository store.AccountRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// AccountRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(accountRepository store.AccountRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// SignIn authenticates an account of the given kind.
//
// It looks the account up by (kind, email) and compares the supplied password
// against the stored bcrypt hash. An unknown email and a wrong password are
// deliberately distinct outcomes, matching the API's 404-vs-401 contract.
//
// Returns the authenticated account record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped store.ErrAccountNotFound if no account of that kind holds
//     the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) SignIn(ctx context.Context, kind models.AccountKind, email, password string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("kind", string(kind)).Msg("sign-in with empty email or password")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindAccountByEmail(ctx, kind, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().
				Int64("id", account.AccountID).
				Str("email", account.Email).
				Msg("wrong password")
			return models.Account{}, ErrWrongPassword
		}
		return models.Account{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return account, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the account kind as the
// "kind" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.AccountID, account.Kind, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the kind claim. Any validation failure (expired,
// wrong issuer, malformed, forged) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
