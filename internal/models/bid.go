package models

import "time"

// Bid is a monetary offer on a listing. Bids are never updated or deleted.
type Bid struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username,omitempty"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
