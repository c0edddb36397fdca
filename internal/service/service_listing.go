package service

import (
	"context"
	"fmt"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/objectstore"
	"github.com/boardhive/jobboard/internal/store"
	"github.com/boardhive/jobboard/models"
)

const bannerKeySuffix = "banner"

// listingService is the concrete implementation of ListingService.
type listingService struct {
	// listingRepository is the data-access layer for listing records.
	listingRepository store.ListingRepository

	// blobs stores banner payloads. Uploads happen before persistence so a
	// listing never references a blob that does not exist.
	blobs objectstore.ObjectStore

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewListingService constructs a ListingService wired to the given repository
// and object store.
func NewListingService(listingRepository store.ListingRepository, blobs objectstore.ObjectStore, logger *logger.Logger) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		blobs:             blobs,
		logger:            logger,
	}
}

// Create publishes a new job listing owned by the given company account.
//
// Every text field and the banner are required. The banner is uploaded before
// the record is persisted; a persistence failure deletes the uploaded blob
// best-effort.
func (l *listingService) Create(ctx context.Context, authorID int64, input ListingInput) (models.Listing, error) {
	log := logger.FromContext(ctx)

	if input.Title == "" || input.Position == "" || input.Requirements == "" ||
		input.ContactPhone == "" || input.ContactEmail == "" || input.MailingAddress == "" {
		log.Error().Int64("authorID", authorID).Msg("listing creation with missing fields")
		return models.Listing{}, fmt.Errorf("%w: all listing fields are required", ErrInvalidDataProvided)
	}
	if input.Banner == nil {
		return models.Listing{}, fmt.Errorf("%w: banner attachment is required", ErrInvalidDataProvided)
	}

	key := objectstore.StorageKey(bannerKeySuffix)
	link, err := l.blobs.Upload(ctx, key, input.Banner.Data, input.Banner.ContentType)
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("banner upload failed")
		return models.Listing{}, fmt.Errorf("banner upload failed: %w", err)
	}

	listing := models.Listing{
		Title:          input.Title,
		Position:       input.Position,
		Requirements:   input.Requirements,
		ContactPhone:   input.ContactPhone,
		ContactEmail:   input.ContactEmail,
		MailingAddress: input.MailingAddress,
		Banner:         models.Attachment{Key: key, Link: link},
		AuthorID:       authorID,
	}

	created, err := l.listingRepository.CreateListing(ctx, listing)
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("listing creation ended with error")
		l.deleteBlob(ctx, key)
		return models.Listing{}, fmt.Errorf("listing creation ended with error: %w", err)
	}

	return created, nil
}

// ListPublic returns one page of listings matching the exact-match filter.
// Pages are 1-based; page values below 1 are clamped to the first page and
// the page size is clamped to [1, maxPageSize]. An empty page yields
// ErrNoListingsFound, a distinct outcome from a failed query.
func (l *listingService) ListPublic(ctx context.Context, filter map[string]string, page, limit uint64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	skip, limit := pageWindow(page, limit)

	listings, err := l.listingRepository.FindListings(ctx, filter, skip, limit)
	if err != nil {
		log.Err(err).Msg("listing search failed")
		return nil, fmt.Errorf("listing search failed: %w", err)
	}
	if len(listings) == 0 {
		return nil, ErrNoListingsFound
	}

	return listings, nil
}

// GetOwn returns every listing owned by the given company account. An empty
// result yields ErrNoListingsFound.
func (l *listingService) GetOwn(ctx context.Context, authorID int64) ([]models.Listing, error) {
	log := logger.FromContext(ctx)

	listings, err := l.listingRepository.FindListingsByAuthor(ctx, authorID)
	if err != nil {
		log.Err(err).Int64("authorID", authorID).Msg("own listing search failed")
		return nil, fmt.Errorf("own listing search failed: %w", err)
	}
	if len(listings) == 0 {
		return nil, ErrNoListingsFound
	}

	return listings, nil
}

// Update applies a partial update to the listing with the given id. A
// non-zero authorID constrains the update to listings owned by that account;
// a non-owner gets the same not-found outcome as for a missing listing.
// Passing authorID 0 bypasses the ownership constraint (admin moderation).
//
// Banner replacement follows upload-then-swap: the new blob is uploaded
// first, the record is repointed, and only then is the old blob deleted. An
// upload or persistence failure leaves the record and the old blob untouched.
func (l *listingService) Update(ctx context.Context, listingID, authorID int64, input UpdateListingInput) (models.Listing, error) {
	log := logger.FromContext(ctx)

	update := models.ListingUpdate{
		Title:          input.Title,
		Position:       input.Position,
		Requirements:   input.Requirements,
		ContactPhone:   input.ContactPhone,
		ContactEmail:   input.ContactEmail,
		MailingAddress: input.MailingAddress,
	}

	var oldBannerKey string
	if input.Banner != nil {
		current, err := l.listingRepository.FindListingByID(ctx, listingID)
		if err != nil {
			return models.Listing{}, fmt.Errorf("listing lookup failed: %w", err)
		}
		if authorID != 0 && current.AuthorID != authorID {
			return models.Listing{}, fmt.Errorf("listing lookup failed: %w", store.ErrListingNotFound)
		}
		oldBannerKey = current.Banner.Key

		key := objectstore.StorageKey(bannerKeySuffix)
		link, err := l.blobs.Upload(ctx, key, input.Banner.Data, input.Banner.ContentType)
		if err != nil {
			log.Err(err).Int64("listingID", listingID).Msg("replacement banner upload failed")
			return models.Listing{}, fmt.Errorf("banner upload failed: %w", err)
		}

		update.Banner = &models.Attachment{Key: key, Link: link}
	}

	updated, err := l.listingRepository.UpdateListing(ctx, listingID, authorID, update)
	if err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing update failed")
		if update.Banner != nil {
			l.deleteBlob(ctx, update.Banner.Key)
		}
		return models.Listing{}, fmt.Errorf("listing update failed: %w", err)
	}

	if update.Banner != nil && oldBannerKey != "" {
		l.deleteBlob(ctx, oldBannerKey)
	}

	return updated, nil
}

// Destroy removes the listing with the given id, constrained to the owning
// account when authorID is non-zero. The banner blob is left in place; only
// the reference goes away with the record.
func (l *listingService) Destroy(ctx context.Context, listingID, authorID int64) error {
	log := logger.FromContext(ctx)

	if err := l.listingRepository.DeleteListing(ctx, listingID, authorID); err != nil {
		log.Err(err).Int64("listingID", listingID).Msg("listing deletion failed")
		return fmt.Errorf("listing deletion failed: %w", err)
	}

	return nil
}

// deleteBlob removes one storage key best-effort.
func (l *listingService) deleteBlob(ctx context.Context, key string) {
	log := logger.FromContext(ctx)

	if err := l.blobs.Delete(ctx, key); err != nil {
		log.Err(err).Str("key", key).Msg("blob rollback failed")
	}
}
