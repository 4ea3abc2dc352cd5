package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/auctions-be/internal/models"
	"github.com/isdelr/auctions-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ListingHandler handles HTTP requests related to listings and categories.
type ListingHandler struct {
	service services.ListingServiceProvider
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service services.ListingServiceProvider) *ListingHandler {
	return &ListingHandler{service: service}
}

// GetAll handles the request for all active listings.
func (h *ListingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.GetActiveListings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// Get handles the listing page: the listing, its comments and bid summary.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	detail, err := h.service.GetListingDetail(r.Context(), id, viewerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// Create handles the request to create a new listing owned by the caller.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var input models.NewListing
	if !decodeJSON(w, r, &input) {
		return
	}

	listing, err := h.service.CreateListing(r.Context(), claims.UserID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("listing_id", listing.ID).Str("user_id", claims.UserID).Msg("Listing created")
	writeJSON(w, http.StatusCreated, listing)
}

// Close handles the owner's request to close a listing.
func (h *ListingHandler) Close(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	listing, err := h.service.CloseListing(r.Context(), id, claims.UserID)
	if err != nil {
		log.Warn().Err(err).Str("listing_id", id).Str("user_id", claims.UserID).Msg("Failed to close listing")
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// GetCategories handles the request for the categories in use.
func (h *ListingHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetByCategory handles the request for active listings in one category.
func (h *ListingHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	// chi matches on the raw path when it holds escapes such as %2F.
	category, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid category")
		return
	}

	listings, err := h.service.GetListingsByCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}
