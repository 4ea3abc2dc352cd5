package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/isdelr/auctions-be/internal/models"
)

// WatchlistServiceProvider defines the interface for watchlist services.
type WatchlistServiceProvider interface {
	ToggleWatchlist(ctx context.Context, userID, listingID string) (bool, error)
	GetWatchlist(ctx context.Context, userID string) ([]models.Listing, error)
}

// WatchlistService manages each user's set of watched listings.
type WatchlistService struct {
	db *sql.DB
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(db *sql.DB) *WatchlistService {
	return &WatchlistService{db: db}
}

// ToggleWatchlist removes the listing from the user's watchlist if it is
// there and adds it otherwise. It reports whether the listing is watched
// afterwards. Closed listings can be removed but not added.
func (s *WatchlistService) ToggleWatchlist(ctx context.Context, userID, listingID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer rollback(tx)

	var userExists bool
	err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", userID).Scan(&userExists)
	if err != nil {
		return false, err
	}
	if !userExists {
		return false, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	var active bool
	err = tx.QueryRowContext(ctx, "SELECT active FROM listings WHERE id = ?", listingID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("listing %s: %w", listingID, ErrNotFound)
		}
		return false, err
	}

	watched, err := isWatched(ctx, tx, userID, listingID)
	if err != nil {
		return false, err
	}

	if watched {
		_, err = tx.ExecContext(ctx, "DELETE FROM watchlist WHERE user_id = ? AND listing_id = ?", userID, listingID)
	} else {
		if !active {
			return false, fmt.Errorf("watch listing %s: %w", listingID, ErrListingClosed)
		}
		_, err = tx.ExecContext(ctx, "INSERT INTO watchlist (user_id, listing_id) VALUES (?, ?)", userID, listingID)
	}
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return !watched, nil
}

// GetWatchlist returns the listings a user watches, newest first.
func (s *WatchlistService) GetWatchlist(ctx context.Context, userID string) ([]models.Listing, error) {
	return queryListings(ctx, s.db,
		listingColumns+" JOIN watchlist w ON w.listing_id = l.id WHERE w.user_id = ? ORDER BY l.created_at DESC, l.rowid DESC",
		userID)
}

func isWatched(ctx context.Context, q querier, userID, listingID string) (bool, error) {
	var watched bool
	err := q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM watchlist WHERE user_id = ? AND listing_id = ?)", userID, listingID).Scan(&watched)
	return watched, err
}
