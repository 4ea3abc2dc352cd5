package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/isdelr/auctions-be/internal/services"
	ws "github.com/isdelr/auctions-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades connections that follow a listing's price.
type WebSocketHandler struct {
	hub      *ws.Hub
	listings services.ListingServiceProvider
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler. Browser connections
// are accepted only from allowedOrigins; non-browser clients send no Origin.
func NewWebSocketHandler(hub *ws.Hub, listings services.ListingServiceProvider, allowedOrigins []string) *WebSocketHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &WebSocketHandler{
		hub:      hub,
		listings: listings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
	}
}

// Serve handles the WebSocket connection request for /listings/{id}/ws.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")
	if _, err := h.listings.GetListing(r.Context(), listingID); err != nil {
		writeError(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade websocket connection")
		return
	}

	client := ws.NewClient(h.hub, conn, listingID)
	select {
	case h.hub.Register <- client:
	case <-h.hub.Done():
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), time.Now().Add(time.Second))
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump(h.handleIncomingWSMessage)
}

// handleIncomingWSMessage drops client messages; the stream is server-push only.
// Send belongs to the hub, which may close it at any time, so nothing is written back.
func (h *WebSocketHandler) handleIncomingWSMessage(client *ws.Client, message []byte) {
	log.Debug().Str("listing_id", client.ListingID).Bytes("message", message).Msg("Ignoring client websocket message")
}
