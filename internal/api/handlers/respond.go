package handlers

//go:generate mockgen -destination=mock_services_test.go -package=handlers github.com/isdelr/auctions-be/internal/services ListingServiceProvider,BidServiceProvider,CommentServiceProvider,WatchlistServiceProvider,UserServiceProvider,EventServiceProvider

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/auctions-be/internal/auth"
	"github.com/isdelr/auctions-be/internal/services"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error        string `json:"error"`
	CurrentPrice *int64 `json:"currentPrice,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps service errors to a status code and a user-visible message.
// Unexpected errors are logged and reported as 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLow *services.BidTooLowError
	switch {
	case errors.As(err, &tooLow):
		price := tooLow.CurrentPrice
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: tooLow.Error(), CurrentPrice: &price})
	case errors.Is(err, services.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidInput):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPasswordMismatch):
		writeErrorMessage(w, http.StatusBadRequest, services.ErrPasswordMismatch.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		writeErrorMessage(w, http.StatusConflict, services.ErrUsernameTaken.Error())
	case errors.Is(err, services.ErrListingClosed):
		writeErrorMessage(w, http.StatusConflict, services.ErrListingClosed.Error())
	case errors.Is(err, services.ErrForbidden):
		writeErrorMessage(w, http.StatusForbidden, "Only the listing owner may do that")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Request failed")
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// viewerID returns the authenticated user's ID or "" for anonymous requests.
func viewerID(r *http.Request) string {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		return claims.UserID
	}
	return ""
}

// requireClaims fetches the claims set by the auth middleware.
func requireClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Str("path", r.URL.Path).Msg("Could not retrieve user claims from context")
		writeErrorMessage(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return claims, true
}
