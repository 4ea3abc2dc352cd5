package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/isdelr/auctions-be/internal/models"
	"github.com/isdelr/auctions-be/internal/websocket"
)

const (
	maxTitleLength    = 64
	maxCategoryLength = 64
)

// ListingBroadcaster pushes messages to clients watching a listing.
type ListingBroadcaster interface {
	BroadcastTo(listingID string, message []byte)
}

// ListingServiceProvider defines the interface for listing services.
type ListingServiceProvider interface {
	CreateListing(ctx context.Context, ownerID string, input models.NewListing) (models.Listing, error)
	GetListing(ctx context.Context, id string) (models.Listing, error)
	GetListingDetail(ctx context.Context, id, viewerID string) (models.ListingDetail, error)
	GetActiveListings(ctx context.Context) ([]models.Listing, error)
	GetListingsByCategory(ctx context.Context, category string) ([]models.Listing, error)
	GetCategories(ctx context.Context) ([]string, error)
	CloseListing(ctx context.Context, id, actorID string) (models.Listing, error)
}

// ListingService provides business logic for listings.
type ListingService struct {
	db           *sql.DB
	eventService EventServiceProvider
	hub          ListingBroadcaster
}

// NewListingService creates a new ListingService. hub may be nil.
func NewListingService(db *sql.DB, eventService EventServiceProvider, hub ListingBroadcaster) *ListingService {
	return &ListingService{db: db, eventService: eventService, hub: hub}
}

// listingColumns selects a listing with its owner and bid aggregates;
// scanListing reads the same column order.
const listingColumns = `
	SELECT l.id, l.title, l.description, l.starting_bid, l.image_url, l.category, l.active, l.created_at,
	       o.user_id, u.username,
	       (SELECT COUNT(*) FROM bids b WHERE b.listing_id = l.id),
	       (SELECT MAX(b.amount) FROM bids b WHERE b.listing_id = l.id)
	FROM listings l
	JOIN listing_owners o ON o.listing_id = l.id
	JOIN users u ON u.id = o.user_id`

func scanListing(scanner interface{ Scan(...interface{}) error }) (models.Listing, error) {
	var l models.Listing
	var highest sql.NullInt64
	err := scanner.Scan(
		&l.ID, &l.Title, &l.Description, &l.StartingBid, &l.ImageURL, &l.Category, &l.Active, &l.CreatedAt,
		&l.OwnerID, &l.OwnerUsername,
		&l.BidCount, &highest,
	)
	if err != nil {
		return models.Listing{}, err
	}
	l.HighestBid = nullableInt(highest)
	l.CurrentPrice = CurrentPrice(l.StartingBid, l.HighestBid)
	return l, nil
}

func queryListings(ctx context.Context, q querier, query string, args ...interface{}) ([]models.Listing, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func getListing(ctx context.Context, q querier, id string) (models.Listing, error) {
	l, err := scanListing(q.QueryRowContext(ctx, listingColumns+" WHERE l.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, fmt.Errorf("listing %s: %w", id, ErrNotFound)
		}
		return models.Listing{}, err
	}
	return l, nil
}

func validateNewListing(input *models.NewListing) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	input.Category = strings.TrimSpace(input.Category)

	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case utf8.RuneCountInString(input.Title) > maxTitleLength:
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, maxTitleLength)
	case input.Description == "":
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	case input.StartingBid < 0:
		return fmt.Errorf("%w: starting bid must not be negative", ErrInvalidInput)
	case utf8.RuneCountInString(input.Category) > maxCategoryLength:
		return fmt.Errorf("%w: category must be at most %d characters", ErrInvalidInput, maxCategoryLength)
	}

	if input.ImageURL != "" {
		u, err := url.ParseRequestURI(input.ImageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: image URL must be an absolute http(s) URL", ErrInvalidInput)
		}
	}
	return nil
}

// CreateListing stores a new listing and its ownership in one transaction.
func (s *ListingService) CreateListing(ctx context.Context, ownerID string, input models.NewListing) (models.Listing, error) {
	if err := validateNewListing(&input); err != nil {
		return models.Listing{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Listing{}, err
	}
	defer rollback(tx)

	var exists bool
	err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", ownerID).Scan(&exists)
	if err != nil {
		return models.Listing{}, err
	}
	if !exists {
		return models.Listing{}, fmt.Errorf("user %s: %w", ownerID, ErrNotFound)
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO listings (id, title, description, starting_bid, image_url, category, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, TRUE, ?)`,
		id, input.Title, input.Description, input.StartingBid, input.ImageURL, input.Category, now())
	if err != nil {
		return models.Listing{}, fmt.Errorf("failed to insert listing: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "INSERT INTO listing_owners (listing_id, user_id) VALUES (?, ?)", id, ownerID); err != nil {
		return models.Listing{}, fmt.Errorf("failed to record listing owner: %w", err)
	}

	listing, err := getListing(ctx, tx, id)
	if err != nil {
		return models.Listing{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Listing{}, err
	}

	recordEvent(ctx, s.eventService, EventListingCreated,
		fmt.Sprintf("Listing '%s' created with a starting bid of %d.", listing.Title, listing.StartingBid), &listing.ID)
	return listing, nil
}

// GetListing retrieves a single listing by its ID.
func (s *ListingService) GetListing(ctx context.Context, id string) (models.Listing, error) {
	return getListing(ctx, s.db, id)
}

// GetListingDetail assembles the listing page. viewerID may be empty for
// anonymous callers, in which case Watched is left nil.
func (s *ListingService) GetListingDetail(ctx context.Context, id, viewerID string) (models.ListingDetail, error) {
	listing, err := getListing(ctx, s.db, id)
	if err != nil {
		return models.ListingDetail{}, err
	}
	detail := models.ListingDetail{Listing: listing}

	if listing.HighestBid != nil {
		var bidder string
		err := s.db.QueryRowContext(ctx, `
			SELECT u.username FROM bids b JOIN users u ON u.id = b.user_id
			WHERE b.listing_id = ?
			ORDER BY b.amount DESC, b.created_at ASC, b.rowid ASC
			LIMIT 1`, id).Scan(&bidder)
		if err != nil {
			return models.ListingDetail{}, err
		}
		detail.HighestBidder = &bidder
	}

	if detail.Comments, err = listComments(ctx, s.db, id); err != nil {
		return models.ListingDetail{}, err
	}

	if viewerID != "" {
		watched, err := isWatched(ctx, s.db, viewerID, id)
		if err != nil {
			return models.ListingDetail{}, err
		}
		detail.Watched = &watched
	}
	return detail, nil
}

// GetActiveListings returns every open listing, newest first.
func (s *ListingService) GetActiveListings(ctx context.Context) ([]models.Listing, error) {
	return queryListings(ctx, s.db, listingColumns+" WHERE l.active ORDER BY l.created_at DESC, l.rowid DESC")
}

// GetListingsByCategory returns open listings in a category, matched without regard to case.
func (s *ListingService) GetListingsByCategory(ctx context.Context, category string) ([]models.Listing, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return queryListings(ctx, s.db,
		listingColumns+" WHERE l.active AND l.category = ? COLLATE NOCASE ORDER BY l.created_at DESC, l.rowid DESC",
		category)
}

// GetCategories returns the distinct categories used by open listings.
func (s *ListingService) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT MIN(category) FROM listings
		WHERE active AND category != ''
		GROUP BY category COLLATE NOCASE
		ORDER BY 1 COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CloseListing marks a listing inactive, clears its category and drops it
// from every watchlist. Only the owner may close a listing.
func (s *ListingService) CloseListing(ctx context.Context, id, actorID string) (models.Listing, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Listing{}, err
	}
	defer rollback(tx)

	var active bool
	var ownerID string
	err = tx.QueryRowContext(ctx, `
		SELECT l.active, o.user_id FROM listings l
		JOIN listing_owners o ON o.listing_id = l.id
		WHERE l.id = ?`, id).Scan(&active, &ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, fmt.Errorf("listing %s: %w", id, ErrNotFound)
		}
		return models.Listing{}, err
	}
	if ownerID != actorID {
		return models.Listing{}, fmt.Errorf("close listing %s: %w: only the owner may close it", id, ErrForbidden)
	}
	if !active {
		return models.Listing{}, fmt.Errorf("close listing %s: %w", id, ErrListingClosed)
	}

	if _, err = tx.ExecContext(ctx, "UPDATE listings SET active = FALSE, category = '' WHERE id = ?", id); err != nil {
		return models.Listing{}, err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM watchlist WHERE listing_id = ?", id)
	if err != nil {
		return models.Listing{}, err
	}
	unwatched, _ := res.RowsAffected()

	listing, err := getListing(ctx, tx, id)
	if err != nil {
		return models.Listing{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Listing{}, err
	}

	recordEvent(ctx, s.eventService, EventListingClosed,
		fmt.Sprintf("Listing '%s' closed at %d; removed from %d watchlists.", listing.Title, listing.CurrentPrice, unwatched), &listing.ID)
	if s.hub != nil {
		s.hub.BroadcastTo(listing.ID, websocket.NewListingClosedMessage(listing.ID))
	}
	return listing, nil
}
