package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/auctions-be/internal/services"
)

// WatchlistHandler handles HTTP requests for the caller's watchlist.
type WatchlistHandler struct {
	service services.WatchlistServiceProvider
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(service services.WatchlistServiceProvider) *WatchlistHandler {
	return &WatchlistHandler{service: service}
}

// Toggle adds the listing to the caller's watchlist, or removes it if present.
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	listingID := chi.URLParam(r, "id")
	watched, err := h.service.ToggleWatchlist(r.Context(), claims.UserID, listingID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"listingId": listingID,
		"watched":   watched,
	})
}

// GetAll handles the request for the caller's watched listings.
func (h *WatchlistHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	listings, err := h.service.GetWatchlist(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}
