package services

import (
	"errors"
	"fmt"
)

// Lookup errors
var (
	ErrNotFound = errors.New("not found")
)

// Business rule errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrBidTooLow          = errors.New("bid must exceed current price")
	ErrListingClosed      = errors.New("listing is closed")
	ErrForbidden          = errors.New("forbidden")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordMismatch   = errors.New("passwords must match")
	ErrInvalidCredentials = errors.New("invalid username and/or password")
)

// BidTooLowError carries the price a rejected bid was measured against.
// It matches ErrBidTooLow with errors.Is.
type BidTooLowError struct {
	CurrentPrice int64
	HasBids      bool
}

func (e *BidTooLowError) Error() string {
	if !e.HasBids {
		return fmt.Sprintf("bid must be at least the starting bid of %d", e.CurrentPrice)
	}
	return fmt.Sprintf("%s of %d", ErrBidTooLow, e.CurrentPrice)
}

func (e *BidTooLowError) Unwrap() error { return ErrBidTooLow }
