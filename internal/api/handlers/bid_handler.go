package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/auctions-be/internal/services"
	"github.com/rs/zerolog/log"
)

// BidHandler handles HTTP requests related to bids.
type BidHandler struct {
	service services.BidServiceProvider
}

// NewBidHandler creates a new BidHandler.
func NewBidHandler(service services.BidServiceProvider) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidPayload is the expected JSON body for placing a bid.
type PlaceBidPayload struct {
	Amount *int64 `json:"amount"`
}

// GetAllForListing handles the request for a listing's bid history.
func (h *BidHandler) GetAllForListing(w http.ResponseWriter, r *http.Request) {
	bids, err := h.service.GetBidsForListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}

// Create handles a bid from the authenticated user.
func (h *BidHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var payload PlaceBidPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.Amount == nil {
		writeErrorMessage(w, http.StatusBadRequest, "Bid amount is required")
		return
	}

	listingID := chi.URLParam(r, "id")
	bid, err := h.service.PlaceBid(r.Context(), listingID, claims.UserID, *payload.Amount)
	if err != nil {
		if errors.Is(err, services.ErrBidTooLow) {
			log.Info().Str("listing_id", listingID).Str("user_id", claims.UserID).Int64("amount", *payload.Amount).Msg("Bid rejected")
		}
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bid)
}

// PriceResponse reports the amount a new bid has to beat.
type PriceResponse struct {
	ListingID    string `json:"listingId"`
	CurrentPrice int64  `json:"currentPrice"`
}

// GetPrice handles the request for a listing's current price.
func (h *BidHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	price, err := h.service.GetCurrentPrice(r.Context(), listingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PriceResponse{ListingID: listingID, CurrentPrice: price})
}
