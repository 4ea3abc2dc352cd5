package models

import "time"

// Listing is an item up for auction together with the values derived from
// its owner and bids.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartingBid int64     `json:"startingBid"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Category    string    `json:"category,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`

	OwnerID       string `json:"ownerId"`
	OwnerUsername string `json:"ownerUsername"`

	BidCount     int    `json:"bidCount"`
	HighestBid   *int64 `json:"highestBid,omitempty"` // nil until the first bid
	CurrentPrice int64  `json:"currentPrice"`
}

// NewListing is the input for creating a listing.
type NewListing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartingBid int64  `json:"startingBid"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

// ListingDetail is everything the listing page shows.
type ListingDetail struct {
	Listing
	HighestBidder *string   `json:"highestBidder,omitempty"`
	Comments      []Comment `json:"comments"`
	Watched       *bool     `json:"watched,omitempty"` // nil for anonymous callers
}
