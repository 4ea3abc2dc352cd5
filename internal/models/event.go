package models

import "time"

// Event represents a loggable action in the system.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "bid.placed", "listing.closed"
	Level     string    `json:"level"` // e.g., "info", "warn", "error"
	Message   string    `json:"message"`
	ListingID *string   `json:"listingId,omitempty"` // Nullable for user-level events
	CreatedAt time.Time `json:"createdAt"`
}
