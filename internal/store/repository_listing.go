package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/models"
)

// listingRepository is the PostgreSQL-backed implementation of
// [ListingRepository].
type listingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewListingRepository constructs a [ListingRepository] backed by the
// provided database connection and logger.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating listing repository")
	return &listingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateListing persists a new listing and returns the fully populated
// [models.Listing] with server-assigned fields (ListingID, CreatedAt).
func (r *listingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createListing,
		listing.Title, listing.Position, listing.Requirements,
		listing.ContactPhone, listing.ContactEmail, listing.MailingAddress,
		listing.Banner.Key, listing.Banner.Link, listing.AuthorID,
	)

	created, err := scanListing(row)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.CreateListing").Msg("error creating listing")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindListingByID retrieves the listing with the given id.
// Returns [ErrListingNotFound] when no such record exists.
func (r *listingRepository) FindListingByID(ctx context.Context, listingID int64) (models.Listing, error) {
	log := logger.FromContext(ctx)

	listing, err := scanListing(r.db.QueryRowContext(ctx, findListingByID, listingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrListingNotFound
		}
		log.Err(err).Str("func", "*listingRepository.FindListingByID").Msg("error finding listing")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return listing, nil
}

// FindListings returns listings matching the exact-match filter, ordered by
// id, skipping skip records and returning at most limit.
func (r *listingRepository) FindListings(ctx context.Context, filter map[string]string, skip, limit uint64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	eq, err := filterToEq(filter, filterableListingColumns)
	if err != nil {
		return nil, err
	}

	builder := sq.Select(listingColumns).
		From("listings").
		OrderBy("listing_id").
		Offset(skip).
		Limit(limit).
		PlaceholderFormat(sq.Dollar)
	if len(eq) > 0 {
		builder = builder.Where(eq)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.FindListings").Msg("error listing listings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

// FindListingsByAuthor returns every listing owned by the given company
// account, ordered by id.
func (r *listingRepository) FindListingsByAuthor(ctx context.Context, authorID int64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findListingsByAuthor, authorID)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.FindListingsByAuthor").Msg("error listing listings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.Listing, 0)
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

// UpdateListing applies the non-nil fields of update to the listing with the
// given id and returns the updated record. When authorID is non-zero, the
// update only matches a listing owned by that account, so a non-owner
// receives [ErrListingNotFound] just like for a missing listing.
func (r *listingRepository) UpdateListing(ctx context.Context, listingID, authorID int64, update models.ListingUpdate) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return r.FindListingByID(ctx, listingID)
	}

	builder := sq.Update("listings").PlaceholderFormat(sq.Dollar)
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}
	if update.Requirements != nil {
		builder = builder.Set("requirements", *update.Requirements)
	}
	if update.ContactPhone != nil {
		builder = builder.Set("contact_phone", *update.ContactPhone)
	}
	if update.ContactEmail != nil {
		builder = builder.Set("contact_email", *update.ContactEmail)
	}
	if update.MailingAddress != nil {
		builder = builder.Set("mailing_address", *update.MailingAddress)
	}
	if update.Banner != nil {
		builder = builder.Set("banner_key", update.Banner.Key).Set("banner_link", update.Banner.Link)
	}

	where := sq.Eq{"listing_id": listingID}
	if authorID != 0 {
		where["author_id"] = authorID
	}

	query, args, err := builder.
		Where(where).
		Suffix("RETURNING " + listingColumns).
		ToSql()
	if err != nil {
		return models.Listing{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	listing, err := scanListing(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrListingNotFound
		}
		log.Err(err).Str("func", "*listingRepository.UpdateListing").Msg("error updating listing")
		return models.Listing{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return listing, nil
}

// DeleteListing removes the listing with the given id, constrained to the
// owning account when authorID is non-zero.
// Returns [ErrListingNotFound] when no record was deleted.
func (r *listingRepository) DeleteListing(ctx context.Context, listingID, authorID int64) error {
	log := logger.FromContext(ctx)

	where := sq.Eq{"listing_id": listingID}
	if authorID != 0 {
		where["author_id"] = authorID
	}

	query, args, err := sq.Delete("listings").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listingRepository.DeleteListing").Msg("error deleting listing")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// scanListing reads one listing row in [listingColumns] order.
func scanListing(s rowScanner) (models.Listing, error) {
	var listing models.Listing

	err := s.Scan(
		&listing.ListingID, &listing.Title, &listing.Position, &listing.Requirements,
		&listing.ContactPhone, &listing.ContactEmail, &listing.MailingAddress,
		&listing.Banner.Key, &listing.Banner.Link, &listing.AuthorID, &listing.CreatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	return listing, nil
}
