package services

import "fmt"

// CurrentPrice returns the effective price of a listing: the highest bid once
// one exists, otherwise the starting bid. Every read and validation path goes
// through here.
func CurrentPrice(startingBid int64, highestBid *int64) int64 {
	if highestBid == nil {
		return startingBid
	}
	return *highestBid
}

// ValidateBid decides whether amount may be placed on a listing. The first
// bid may equal the starting bid; every later bid must beat the highest one.
func ValidateBid(amount, startingBid int64, highestBid *int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: bid amount must not be negative", ErrInvalidInput)
	}
	if highestBid == nil {
		if amount < startingBid {
			return &BidTooLowError{CurrentPrice: startingBid}
		}
		return nil
	}
	if amount <= *highestBid {
		return &BidTooLowError{CurrentPrice: *highestBid, HasBids: true}
	}
	return nil
}
