// SPDX-License-Identifier: Apache-2.0

package http

import (
	"fmt"
	"net/http"

	"github.com/boardhive/jobboard/internal/logger"
	"github.com/boardhive/jobboard/internal/service"
	"github.com/boardhive/jobboard/internal/utils"
)

// createListing accepts a new job listing from a company account. The listing
// is persisted before the response, but the answer is 202 because the posting
// only becomes reachable once downstream propagation settles.
func (h *Handler) createListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: multipart form expected", service.ErrInvalidDataProvided))
		return
	}

	banner, err := readFileUpload(r, "banner")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	input := service.ListingInput{
		Title:          r.FormValue("title"),
		Position:       r.FormValue("position"),
		Requirements:   r.FormValue("requirements"),
		ContactPhone:   r.FormValue("contact_phone"),
		ContactEmail:   r.FormValue("contact_email"),
		MailingAddress: r.FormValue("mailing_address"),
		Banner:         banner,
	}

	listing, err := h.services.ListingService.Create(ctx, authorID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("listing_id", listing.ListingID).
		Int64("author_id", authorID).
		Msg("listing created")
	h.writeSuccess(w, r, http.StatusAccepted, "Listing accepted", listing)
}

// listPublicListings serves the open listing feed with optional field filters
// and pagination. No session is required.
func (h *Handler) listPublicListings(w http.ResponseWriter, r *http.Request) {
	filter, page, limit, err := parseListQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	listings, err := h.services.ListingService.ListPublic(r.Context(), filter, page, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Listings found", listings)
}

// getOwnListings returns every listing authored by the calling company.
func (h *Handler) getOwnListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authorID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}

	listings, err := h.services.ListingService.GetOwn(ctx, authorID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Listings found", listings)
}

// updateOwnListing applies a partial update to a listing owned by the calling
// company. Listings of other companies answer 404.
func (h *Handler) updateOwnListing(w http.ResponseWriter, r *http.Request) {
	authorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}
	h.updateListing(w, r, authorID)
}

// destroyOwnListing deletes a listing owned by the calling company.
func (h *Handler) destroyOwnListing(w http.ResponseWriter, r *http.Request) {
	authorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoSession)
		return
	}
	h.destroyListing(w, r, authorID)
}

// adminUpdateListing moderates any listing regardless of its author.
func (h *Handler) adminUpdateListing(w http.ResponseWriter, r *http.Request) {
	h.updateListing(w, r, 0)
}

// adminDestroyListing removes any listing regardless of its author.
func (h *Handler) adminDestroyListing(w http.ResponseWriter, r *http.Request) {
	h.destroyListing(w, r, 0)
}

// updateListing parses the multipart update form and delegates to the listing
// service. An authorID of 0 skips the ownership constraint.
func (h *Handler) updateListing(w http.ResponseWriter, r *http.Request, authorID int64) {
	listingID, err := idURLParam(r, "listingID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: multipart form expected", service.ErrInvalidDataProvided))
		return
	}

	banner, err := readFileUpload(r, "banner")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	input := service.UpdateListingInput{
		Title:          formValuePtr(r, "title"),
		Position:       formValuePtr(r, "position"),
		Requirements:   formValuePtr(r, "requirements"),
		ContactPhone:   formValuePtr(r, "contact_phone"),
		ContactEmail:   formValuePtr(r, "contact_email"),
		MailingAddress: formValuePtr(r, "mailing_address"),
		Banner:         banner,
	}

	listing, err := h.services.ListingService.Update(r.Context(), listingID, authorID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, "Listing updated", listing)
}

// destroyListing deletes one listing. An authorID of 0 skips the ownership
// constraint.
func (h *Handler) destroyListing(w http.ResponseWriter, r *http.Request, authorID int64) {
	listingID, err := idURLParam(r, "listingID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ListingService.Destroy(r.Context(), listingID, authorID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("listing_id", listingID).Msg("listing deleted")
	h.writeSuccess(w, r, http.StatusOK, "Listing deleted", nil)
}
