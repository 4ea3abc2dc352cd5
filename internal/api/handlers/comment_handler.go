package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/auctions-be/internal/services"
)

// CommentHandler handles HTTP requests related to listing comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddCommentPayload is the expected JSON body for a new comment.
type AddCommentPayload struct {
	Body string `json:"body"`
}

// GetAllForListing handles the request for a listing's comments.
func (h *CommentHandler) GetAllForListing(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.GetComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Create handles a new comment from the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := requireClaims(w, r)
	if !ok {
		return
	}

	var payload AddCommentPayload
	if !decodeJSON(w, r, &payload) {
		return
	}

	comment, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), claims.UserID, payload.Body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
