package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/auctions-be/internal/models"
	"github.com/rs/zerolog/log"
)

// Event types, also used as broker routing keys.
const (
	EventUserRegistered = "user.registered"
	EventListingCreated = "listing.created"
	EventListingClosed  = "listing.closed"
	EventBidPlaced      = "bid.placed"
	EventCommentAdded   = "comment.added"
)

// EventPublisher forwards events to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	CreateEvent(ctx context.Context, eventType, level, message string, listingID *string) error
	GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	PruneEvents(ctx context.Context, before time.Time) (int64, error)
}

// EventService records activity events and fans them out to the broker.
type EventService struct {
	db        *sql.DB
	publisher EventPublisher
}

// NewEventService creates a new EventService. publisher may be nil.
func NewEventService(db *sql.DB, publisher EventPublisher) *EventService {
	return &EventService{db: db, publisher: publisher}
}

// CreateEvent logs a new event to the database and publishes it.
// A publish failure is logged, not returned: the row is the record of truth.
func (s *EventService) CreateEvent(ctx context.Context, eventType, level, message string, listingID *string) error {
	event := models.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		ListingID: listingID,
		CreatedAt: now(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, type, level, message, listing_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Type, event.Level, event.Message, event.ListingID, event.CreatedAt)
	if err != nil {
		return err
	}

	if s.publisher != nil {
		body, err := json.Marshal(event)
		if err == nil {
			err = s.publisher.Publish(ctx, event.Type, body)
		}
		if err != nil {
			log.Warn().Err(err).Str("event_type", event.Type).Msg("Failed to publish event")
		}
	}
	return nil
}

// GetRecentEvents retrieves the most recent events from the database.
func (s *EventService) GetRecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, type, level, message, listing_id, created_at FROM events ORDER BY created_at DESC, rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.ListingID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// PruneEvents deletes events created before the given time.
func (s *EventService) PruneEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE created_at < ?", before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// recordEvent is the fire-and-forget form used after a commit.
func recordEvent(ctx context.Context, events EventServiceProvider, eventType, message string, listingID *string) {
	if events == nil {
		return
	}
	if err := events.CreateEvent(ctx, eventType, "info", message, listingID); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("Failed to record event")
	}
}
