package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. One table holds every account kind; the kind column
// discriminates the variants and participates in the email uniqueness
// constraint.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account record and returns the fully populated
// [models.Account] with server-assigned fields (AccountID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyTaken].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	profilePicKey, profilePicLink := attachmentColumns(account.ProfilePic)
	logoKey, logoLink := attachmentColumns(account.Logo)
	certificateKey, certificateLink := attachmentColumns(account.Certificate)

	row := r.db.QueryRowContext(ctx, createAccount,
		account.Kind, account.Name, account.Email, account.PasswordHash, account.Address,
		account.Active, account.AdminActive,
		profilePicKey, profilePicLink, logoKey, logoLink, certificateKey, certificateLink,
	)

	created, err := scanAccount(row)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyTaken
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return created, nil
}

// FindAccountByID retrieves the account with the given id regardless of kind.
// Returns [ErrAccountNotFound] when no such record exists.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.db.QueryRowContext(ctx, findAccountByID, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByID").Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// FindAccountByEmail retrieves the account of the given kind whose email
// matches. Returns [ErrAccountNotFound] when no such record exists.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, kind models.AccountKind, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := scanAccount(r.db.QueryRowContext(ctx, findAccountByEmail, kind, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByEmail").Msg("error finding account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// ListAccounts returns accounts of the given kind matching the exact-match
// filter, ordered by id, skipping skip records and returning at most limit.
//
// An empty result is returned as an empty slice, not an error. The service
// layer decides whether "no matches" is a distinct outcome.
func (r *accountRepository) ListAccounts(ctx context.Context, kind models.AccountKind, filter map[string]string, skip, limit uint64) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	eq, err := filterToEq(filter, filterableAccountColumns)
	if err != nil {
		return nil, err
	}
	eq["kind"] = kind

	query, args, err := sq.Select(accountColumns).
		From("accounts").
		Where(eq).
		OrderBy("account_id").
		Offset(skip).
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

// UpdateAccount applies the non-nil fields of update to the account with the
// given id and returns the updated record.
//
// Error handling:
//   - no matching record → [ErrAccountNotFound].
//   - PostgreSQL unique_violation on the email column → [ErrEmailAlreadyTaken].
func (r *accountRepository) UpdateAccount(ctx context.Context, accountID int64, update models.AccountUpdate) (models.Account, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return r.FindAccountByID(ctx, accountID)
	}

	builder := sq.Update("accounts").PlaceholderFormat(sq.Dollar)
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	if update.Active != nil {
		builder = builder.Set("active", *update.Active)
	}
	if update.AdminActive != nil {
		builder = builder.Set("admin_active", *update.AdminActive)
	}
	if update.ProfilePic != nil {
		builder = builder.Set("profile_pic_key", update.ProfilePic.Key).Set("profile_pic_link", update.ProfilePic.Link)
	}
	if update.Logo != nil {
		builder = builder.Set("logo_key", update.Logo.Key).Set("logo_link", update.Logo.Link)
	}
	if update.Certificate != nil {
		builder = builder.Set("certificate_key", update.Certificate.Key).Set("certificate_link", update.Certificate.Link)
	}

	query, args, err := builder.
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + accountColumns).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("error updating account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyTaken
		default:
			return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return account, nil
}

// DeleteAccount removes the account with the given id.
// Returns [ErrAccountNotFound] when no record was deleted.
func (r *accountRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAccount, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("error deleting account")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so that single- and multi-row
// reads share one scanning routine.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount reads one account row in [accountColumns] order, folding the
// flattened attachment columns back into [models.Attachment] values. An
// attachment with an empty key is treated as absent.
func scanAccount(s rowScanner) (models.Account, error) {
	var account models.Account
	var profilePicKey, profilePicLink string
	var logoKey, logoLink string
	var certificateKey, certificateLink string

	err := s.Scan(
		&account.AccountID, &account.Kind, &account.Name, &account.Email, &account.PasswordHash,
		&account.Address, &account.Active, &account.AdminActive,
		&profilePicKey, &profilePicLink, &logoKey, &logoLink, &certificateKey, &certificateLink,
		&account.CreatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	if profilePicKey != "" {
		account.ProfilePic = &models.Attachment{Key: profilePicKey, Link: profilePicLink}
	}
	if logoKey != "" {
		account.Logo = &models.Attachment{Key: logoKey, Link: logoLink}
	}
	if certificateKey != "" {
		account.Certificate = &models.Attachment{Key: certificateKey, Link: certificateLink}
	}

	return account, nil
}

// attachmentColumns flattens an optional attachment into its column pair.
func attachmentColumns(a *models.Attachment) (key, link string) {
	if a == nil {
		return "", ""
	}
	return a.Key, a.Link
}
