package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/isdelr/auctions-be/internal/models"
	"github.com/isdelr/auctions-be/internal/websocket"
)

// BidServiceProvider defines the interface for bid services.
type BidServiceProvider interface {
	PlaceBid(ctx context.Context, listingID, userID string, amount int64) (models.Bid, error)
	GetBidsForListing(ctx context.Context, listingID string) ([]models.Bid, error)
	GetCurrentPrice(ctx context.Context, listingID string) (int64, error)
}

// BidService validates and records bids.
type BidService struct {
	db           *sql.DB
	eventService EventServiceProvider
	hub          ListingBroadcaster
}

// NewBidService creates a new BidService. hub may be nil.
func NewBidService(db *sql.DB, eventService EventServiceProvider, hub ListingBroadcaster) *BidService {
	return &BidService{db: db, eventService: eventService, hub: hub}
}

// PlaceBid records a bid if it beats the listing's current price.
//
// Reading the highest bid, validating and inserting happen in one immediate
// transaction, so concurrent bids on the same listing are checked against
// each other rather than against a stale price.
func (s *BidService) PlaceBid(ctx context.Context, listingID, userID string, amount int64) (models.Bid, error) {
	if amount < 0 {
		return models.Bid{}, fmt.Errorf("%w: bid amount must not be negative", ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Bid{}, err
	}
	defer rollback(tx)

	var startingBid int64
	var active bool
	err = tx.QueryRowContext(ctx, "SELECT starting_bid, active FROM listings WHERE id = ?", listingID).Scan(&startingBid, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, fmt.Errorf("listing %s: %w", listingID, ErrNotFound)
		}
		return models.Bid{}, err
	}
	if !active {
		return models.Bid{}, fmt.Errorf("bid on listing %s: %w", listingID, ErrListingClosed)
	}

	var highest sql.NullInt64
	var count int
	err = tx.QueryRowContext(ctx, "SELECT MAX(amount), COUNT(*) FROM bids WHERE listing_id = ?", listingID).Scan(&highest, &count)
	if err != nil {
		return models.Bid{}, err
	}
	if err := ValidateBid(amount, startingBid, nullableInt(highest)); err != nil {
		return models.Bid{}, fmt.Errorf("bid on listing %s: %w", listingID, err)
	}

	bid := models.Bid{
		ID:        uuid.New().String(),
		ListingID: listingID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now(),
	}
	err = tx.QueryRowContext(ctx, "SELECT username FROM users WHERE id = ?", userID).Scan(&bid.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return models.Bid{}, err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bids (id, listing_id, user_id, amount, created_at) VALUES (?, ?, ?, ?, ?)",
		bid.ID, bid.ListingID, bid.UserID, bid.Amount, bid.CreatedAt)
	if err != nil {
		return models.Bid{}, fmt.Errorf("failed to insert bid: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Bid{}, err
	}

	recordEvent(ctx, s.eventService, EventBidPlaced,
		fmt.Sprintf("%s bid %d.", bid.Username, bid.Amount), &bid.ListingID)
	if s.hub != nil {
		s.hub.BroadcastTo(listingID, websocket.NewBidPlacedMessage(listingID, amount, count+1))
	}
	return bid, nil
}

// GetBidsForListing returns the bid history of a listing, newest first.
func (s *BidService) GetBidsForListing(ctx context.Context, listingID string) ([]models.Bid, error) {
	if _, err := getListing(ctx, s.db, listingID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.listing_id, b.user_id, u.username, b.amount, b.created_at
		FROM bids b JOIN users u ON u.id = b.user_id
		WHERE b.listing_id = ?
		ORDER BY b.created_at DESC, b.rowid DESC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := []models.Bid{}
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.ID, &b.ListingID, &b.UserID, &b.Username, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// GetCurrentPrice resolves the current price of a listing.
func (s *BidService) GetCurrentPrice(ctx context.Context, listingID string) (int64, error) {
	var startingBid int64
	var highest sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT l.starting_bid, (SELECT MAX(b.amount) FROM bids b WHERE b.listing_id = l.id)
		FROM listings l WHERE l.id = ?`, listingID).Scan(&startingBid, &highest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("listing %s: %w", listingID, ErrNotFound)
		}
		return 0, err
	}
	return CurrentPrice(startingBid, nullableInt(highest)), nil
}
