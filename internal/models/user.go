package models

import "time"

// User is an account that can sell, bid, comment and watch listings.
// Watched listings live in the watchlist table, not on the struct.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"` // optional at registration
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
