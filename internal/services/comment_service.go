package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/isdelr/auctions-be/internal/models"
)

const maxCommentLength = 2000

// CommentServiceProvider defines the interface for comment services.
type CommentServiceProvider interface {
	AddComment(ctx context.Context, listingID, userID, body string) (models.Comment, error)
	GetComments(ctx context.Context, listingID string) ([]models.Comment, error)
}

// CommentService provides business logic for listing comments.
type CommentService struct {
	db           *sql.DB
	eventService EventServiceProvider
}

// NewCommentService creates a new CommentService.
func NewCommentService(db *sql.DB, eventService EventServiceProvider) *CommentService {
	return &CommentService{db: db, eventService: eventService}
}

// AddComment appends a comment to an open listing.
func (s *CommentService) AddComment(ctx context.Context, listingID, userID, body string) (models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Comment{}, fmt.Errorf("%w: comment must not be empty", ErrInvalidInput)
	}
	if len([]rune(body)) > maxCommentLength {
		return models.Comment{}, fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, maxCommentLength)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Comment{}, err
	}
	defer rollback(tx)

	if err := requireActiveListing(ctx, tx, listingID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        uuid.New().String(),
		ListingID: listingID,
		UserID:    userID,
		Body:      body,
		CreatedAt: now(),
	}
	err = tx.QueryRowContext(ctx, "SELECT username FROM users WHERE id = ?", userID).Scan(&comment.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return models.Comment{}, err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO comments (id, listing_id, user_id, body, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.ID, comment.ListingID, comment.UserID, comment.Body, comment.CreatedAt)
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Comment{}, err
	}

	recordEvent(ctx, s.eventService, EventCommentAdded,
		fmt.Sprintf("%s commented on a listing.", comment.Username), &comment.ListingID)
	return comment, nil
}

// GetComments returns a listing's comments, oldest first.
func (s *CommentService) GetComments(ctx context.Context, listingID string) ([]models.Comment, error) {
	if _, err := getListing(ctx, s.db, listingID); err != nil {
		return nil, err
	}
	return listComments(ctx, s.db, listingID)
}

func listComments(ctx context.Context, q querier, listingID string) ([]models.Comment, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.id, c.listing_id, c.user_id, u.username, c.body, c.created_at
		FROM comments c JOIN users u ON u.id = c.user_id
		WHERE c.listing_id = ?
		ORDER BY c.created_at ASC, c.rowid ASC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ListingID, &c.UserID, &c.Username, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// requireActiveListing fails with ErrNotFound or ErrListingClosed.
func requireActiveListing(ctx context.Context, q querier, listingID string) error {
	var active bool
	err := q.QueryRowContext(ctx, "SELECT active FROM listings WHERE id = ?", listingID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("listing %s: %w", listingID, ErrNotFound)
		}
		return err
	}
	if !active {
		return fmt.Errorf("listing %s: %w", listingID, ErrListingClosed)
	}
	return nil
}
