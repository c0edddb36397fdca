package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/models"
)

// accountService is the concrete implementation of AccountService. One
// implementation serves all account kinds; the per-kind differences live in
// the kind descriptors.
type accountService struct {
	// accountRepository is the data-access layer for account records.
	accountRepository store.AccountRepository

	// blobs stores attachment payloads. Uploads happen before persistence so
	// a record never references a blob that does not exist.
	blobs objectstore.ObjectStore

	// notifier queues the activation email after a successful sign-up.
	notifier Notifier

	// bcryptCost is the work factor for password hashing. Zero selects the
	// bcrypt library default.
	bcryptCost int

	// domain is the public base URL used to build activation links.
	domain string

	// fromLabel is the sender label on outbound mail.
	fromLabel string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// repository, object store, and notifier, with security parameters from
// appCfg and mail parameters from mailCfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(accountRepository store.AccountRepository, blobs objectstore.ObjectStore, notifier Notifier, appCfg config.App, mailCfg config.Mail, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		blobs:             blobs,
		notifier:          notifier,
		bcryptCost:        appCfg.BcryptCost,
		domain:            appCfg.Domain,
		fromLabel:         mailCfg.FromLabel,
		logger:            logger,
	}
}

// SignUp registers a new account of the given kind.
//
// The pipeline runs in explicit steps: validate the form against the kind
// descriptor, hash the password, upload attachments, persist the record, and
// finally queue the activation email. Attachment uploads precede persistence;
// when a later upload fails, blobs uploaded earlier in the same sign-up are
// deleted again. When persistence fails, every uploaded blob is deleted
// best-effort. The activation email is fire-and-forget: a delivery problem
// never undoes a created account.
//
// New accounts start with Active=false (email unconfirmed) and
// AdminActive=false.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided for an unknown kind, missing fields, or missing
//     required attachments.
//   - ErrPasswordPolicy (wrapped) listing the violated password rules.
//   - store.ErrEmailAlreadyTaken when the email is taken within the kind.
//   - A storage or persistence fault otherwise.
func (a *accountService) SignUp(ctx context.Context, kind models.AccountKind, input SignUpInput) (models.Account, error) {
	log := logger.FromContext(ctx)

	desc, ok := DescriptorFor(kind)
	if !ok {
		return models.Account{}, fmt.Errorf("%w: unknown account kind %q", ErrInvalidDataProvided, kind)
	}

	if input.Name == "" || input.Email == "" {
		log.Error().Str("kind", string(kind)).Msg("sign-up with empty name or email")
		return models.Account{}, fmt.Errorf("%w: name and email are required", ErrInvalidDataProvided)
	}
	if desc.RequiresAddress && input.Address == "" {
		return models.Account{}, fmt.Errorf("%w: address is required", ErrInvalidDataProvided)
	}
	for _, spec := range desc.Attachments {
		if _, provided := input.Files[spec.Field]; spec.Required && !provided {
			return models.Account{}, fmt.Errorf("%w: %s attachment is required", ErrInvalidDataProvided, spec.Field)
		}
	}
	if err := ValidatePassword(input.Password); err != nil {
		return models.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), a.bcryptCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.Account{
		Kind:         kind,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
	}

	uploaded, err := a.uploadAttachments(ctx, desc, input.Files, &account)
	if err != nil {
		return models.Account{}, err
	}

	created, err := a.accountRepository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("account creation ended with error")
		a.deleteBlobs(ctx, uploaded)
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	a.sendActivationMail(desc, created)

	return created, nil
}

// uploadAttachments stores every provided attachment of the descriptor and
// assigns the resulting references to account. When one upload fails, blobs
// uploaded earlier in the same call are deleted before the error is returned.
// Returns the storage keys it uploaded.
func (a *accountService) uploadAttachments(ctx context.Context, desc KindDescriptor, files map[string]models.FileUpload, account *models.Account) ([]string, error) {
	log := logger.FromContext(ctx)

	var uploaded []string
	for _, spec := range desc.Attachments {
		file, provided := files[spec.Field]
		if !provided {
			continue
		}

		key := objectstore.StorageKey(spec.Suffix)
		link, err := a.blobs.Upload(ctx, key, file.Data, file.ContentType)
		if err != nil {
			log.Err(err).Str("field", spec.Field).Msg("attachment upload failed")
			a.deleteBlobs(ctx, uploaded)
			return nil, fmt.Errorf("attachment upload failed: %w", err)
		}

		uploaded = append(uploaded, key)
		spec.assign(account, &models.Attachment{Key: key, Link: link})
	}

	return uploaded, nil
}

// deleteBlobs removes the given storage keys best-effort. Failures are logged
// and otherwise ignored; an orphaned blob is preferable to a failed rollback.
func (a *accountService) deleteBlobs(ctx context.Context, keys []string) {
	log := logger.FromContext(ctx)

	for _, key := range keys {
		if err := a.blobs.Delete(ctx, key); err != nil {
			log.Err(err).Str("key", key).Msg("blob rollback failed")
		}
	}
}

// sendActivationMail queues the sign-up confirmation email carrying the
// activation link. A full queue drops the message; the account stays created
// either way.
func (a *accountService) sendActivationMail(desc KindDescriptor, account models.Account) {
	link := fmt.Sprintf("%s/api/v1/%s/register/%d", a.domain, desc.PathSegment, account.AccountID)
	body := fmt.Sprintf("Hello %s!\nPlease confirm your email address by visiting the link below:\n%s", account.Name, link)

	a.notifier.Enqueue(models.MailJob{
		To:   account.Email,
		From: a.fromLabel,
		Body: body,
	})
}

// Activate marks the account with the given id as email-confirmed. The
// operation is unconditional: any caller holding the id can trigger it, and
// repeating it is harmless.
//
// Returns the updated account or store.ErrAccountNotFound.
func (a *accountService) Activate(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	active := true
	account, err := a.accountRepository.UpdateAccount(ctx, accountID, models.AccountUpdate{Active: &active})
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("account activation failed")
		return models.Account{}, fmt.Errorf("account activation failed: %w", err)
	}

	return account, nil
}

// Get retrieves a single account by id.
func (a *accountService) Get(ctx context.Context, accountID int64) (models.Account, error) {
	account, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	return account, nil
}

// List returns one page of accounts of the given kind matching the
// exact-match filter. Pages are 1-based; page values below 1 are clamped to
// the first page, and the page size is clamped to [1, maxPageSize]. An empty
// page yields ErrNoAccountsFound, a distinct outcome from a failed query.
func (a *accountService) List(ctx context.Context, kind models.AccountKind, filter map[string]string, page, limit uint64) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	skip, limit := pageWindow(page, limit)

	accounts, err := a.accountRepository.ListAccounts(ctx, kind, filter, skip, limit)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Msg("account listing failed")
		return nil, fmt.Errorf("account listing failed: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccountsFound
	}

	return accounts, nil
}

// Update applies a partial update to the account with the given id.
//
// Attachment replacement follows upload-then-swap: the new blob is uploaded
// first, the record is repointed, and only then is the old blob deleted. An
// upload or persistence failure leaves the record and the old blob untouched;
// a failed deletion of the old blob is logged and ignored.
//
// A new password is validated against the password policy and stored hashed.
func (a *accountService) Update(ctx context.Context, accountID int64, input UpdateAccountInput) (models.Account, error) {
	log := logger.FromContext(ctx)

	current, err := a.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		return models.Account{}, fmt.Errorf("account lookup failed: %w", err)
	}

	desc, ok := DescriptorFor(current.Kind)
	if !ok {
		return models.Account{}, fmt.Errorf("%w: unknown account kind %q", ErrInvalidDataProvided, current.Kind)
	}

	update := models.AccountUpdate{
		Name:        input.Name,
		Email:       input.Email,
		Address:     input.Address,
		Active:      input.Active,
		AdminActive: input.AdminActive,
	}
	if input.Password != nil {
		if err := ValidatePassword(*input.Password); err != nil {
			return models.Account{}, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), a.bcryptCost)
		if err != nil {
			return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
		}
		hashString := string(hash)
		update.PasswordHash = &hashString
	}

	var newKeys, oldKeys []string
	for _, spec := range desc.Attachments {
		file, provided := input.Files[spec.Field]
		if !provided {
			continue
		}

		key := objectstore.StorageKey(spec.Suffix)
		link, err := a.blobs.Upload(ctx, key, file.Data, file.ContentType)
		if err != nil {
			log.Err(err).Str("field", spec.Field).Msg("replacement attachment upload failed")
			a.deleteBlobs(ctx, newKeys)
			return models.Account{}, fmt.Errorf("attachment upload failed: %w", err)
		}

		newKeys = append(newKeys, key)
		if old := spec.current(current); old != nil {
			oldKeys = append(oldKeys, old.Key)
		}
		spec.assignUpd(&update, &models.Attachment{Key: key, Link: link})
	}

	updated, err := a.accountRepository.UpdateAccount(ctx, accountID, update)
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("account update failed")
		a.deleteBlobs(ctx, newKeys)
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}

	a.deleteBlobs(ctx, oldKeys)

	return updated, nil
}

// Destroy removes the account record. Attachment blobs are left in place;
// only the references go away with the record.
func (a *accountService) Destroy(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	if err := a.accountRepository.DeleteAccount(ctx, accountID); err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}
