package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Hub maintains the set of active clients and pushes listing updates to them.
type Hub struct {
	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex
	// Listing IDs to the set of clients watching that listing.
	subscriptions map[string]map[*Client]bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		Register:      make(chan *Client),
		Unregister:    make(chan *Client),
		done:          make(chan struct{}),
		subscriptions: make(map[string]map[*Client]bool),
	}
}

// Run starts the Hub's registration loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.closeAll()
			return
		case client := <-h.Register:
			h.mu.Lock()
			if h.subscriptions[client.ListingID] == nil {
				h.subscriptions[client.ListingID] = make(map[*Client]bool)
			}
			h.subscriptions[client.ListingID][client] = true
			n := len(h.subscriptions[client.ListingID])
			h.mu.Unlock()
			log.Debug().Str("listing_id", client.ListingID).Int("watchers", n).Msg("Client connected")
		case client := <-h.Unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			log.Debug().Str("listing_id", client.ListingID).Msg("Client disconnected")
		}
	}
}

// Stop ends Run and closes every client's send channel. It is safe to call
// more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Done is closed once the hub has been stopped. Senders on Register and
// Unregister select on it so they never block on a hub that is gone.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// BroadcastTo sends a message to all clients subscribed to a listing.
// Clients whose buffers are full are dropped.
func (h *Hub) BroadcastTo(listingID string, message []byte) {
	if message == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.subscriptions[listingID] {
		select {
		case client.Send <- message:
		default:
			h.remove(client)
		}
	}
}

// Watchers returns the number of clients subscribed to a listing.
func (h *Hub) Watchers(listingID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscriptions[listingID])
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	subs, ok := h.subscriptions[client.ListingID]
	if !ok || !subs[client] {
		return
	}
	delete(subs, client)
	close(client.Send)
	if len(subs) == 0 {
		delete(h.subscriptions, client.ListingID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for listingID, subs := range h.subscriptions {
		for client := range subs {
			close(client.Send)
		}
		delete(h.subscriptions, listingID)
	}
}
