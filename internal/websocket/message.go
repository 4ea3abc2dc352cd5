package websocket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// BidPlacedPayload is pushed to watchers of a listing after a bid commits.
type BidPlacedPayload struct {
	ListingID    string `json:"listingId"`
	Amount       int64  `json:"amount"`
	CurrentPrice int64  `json:"currentPrice"`
	BidCount     int    `json:"bidCount"`
}

// NewBidPlacedMessage encodes a bid_placed message.
func NewBidPlacedMessage(listingID string, amount int64, bidCount int) []byte {
	return encode(Message{
		Action: "bid_placed",
		Payload: BidPlacedPayload{
			ListingID:    listingID,
			Amount:       amount,
			CurrentPrice: amount,
			BidCount:     bidCount,
		},
	})
}

// NewListingClosedMessage encodes a listing_closed message.
func NewListingClosedMessage(listingID string) []byte {
	return encode(Message{
		Action:  "listing_closed",
		Payload: map[string]string{"listingId": listingID},
	})
}

func encode(m Message) []byte {
	b, err := json.Marshal(m)
	if err != nil {
		log.Error().Err(err).Str("action", m.Action).Msg("Failed to encode websocket message")
		return nil
	}
	return b
}
