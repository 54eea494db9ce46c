package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vr1e/flashcard-study-sub000/internal/auth"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// DeckService is the interface that wraps methods for deck business logic
type DeckService interface {
	// ListDecks returns the user's own decks plus decks shared with them.
	ListDecks(ctx context.Context, userID int) ([]models.Deck, error)
	// GetDeck returns a deck with its cards and the user's due count.
	GetDeck(ctx context.Context, userID, deckID int) (models.DeckDetail, error)
	// CreateDeck creates a deck, optionally shared with the user's partnership.
	CreateDeck(ctx context.Context, userID int, title, description string, shared bool) (models.Deck, error)
	// UpdateDeck overwrites the deck's title and description.
	UpdateDeck(ctx context.Context, userID, deckID int, title, description string) (models.Deck, error)
	// DeleteDeck removes the deck with everything under it.
	DeleteDeck(ctx context.Context, userID, deckID int) error
}

// DeckHandler handles deck management HTTP requests
type DeckHandler struct {
	BaseHandler
	service DeckService
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(service DeckService, logger *zap.Logger) *DeckHandler {
	return &DeckHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all deck handler routes
func (h *DeckHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/decks", h.ListDecks)
		r.Post("/decks", h.CreateDeck)
		r.Get("/decks/{deckID}", h.GetDeck)
		r.Put("/decks/{deckID}", h.UpdateDeck)
		r.Delete("/decks/{deckID}", h.DeleteDeck)
	})
}

// ListDecks handles GET /api/v1/decks
// @Summary List decks
// @Description List the user's own decks plus decks shared by their partner. Requires authentication.
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Deck "Decks"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks [get]
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	decks, err := h.service.ListDecks(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	if decks == nil {
		decks = []models.Deck{}
	}

	h.RespondJSON(w, http.StatusOK, decks)
}

// GetDeck handles GET /api/v1/decks/{deckID}
// @Summary Get a deck
// @Description Get a deck with its cards and the user's due count. Requires authentication.
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.DeckDetail "Deck with cards"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not accessible"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID} [get]
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, err := strconv.Atoi(chi.URLParam(r, "deckID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	detail, err := h.service.GetDeck(r.Context(), userID, deckID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// DeckRequest represents a deck create or update request
type DeckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Shared      bool   `json:"shared"`
}

// CreateDeck handles POST /api/v1/decks
// @Summary Create a deck
// @Description Create a deck, optionally shared with the user's active partnership. Requires authentication.
// @Tags decks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DeckRequest true "Deck"
// @Success 201 {object} models.Deck "Created deck"
// @Failure 400 {object} map[string]string "Bad request - missing title or no partnership to share with"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks [post]
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		h.RespondError(w, http.StatusBadRequest, "title cannot be empty")
		return
	}

	deck, err := h.service.CreateDeck(r.Context(), userID, req.Title, req.Description, req.Shared)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, deck)
}

// UpdateDeck handles PUT /api/v1/decks/{deckID}
// @Summary Update a deck
// @Description Overwrite the deck's title and description. Requires authentication.
// @Tags decks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param request body DeckRequest true "Deck"
// @Success 200 {object} models.Deck "Updated deck"
// @Failure 400 {object} map[string]string "Bad request - missing title"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not editable"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID} [put]
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, err := strconv.Atoi(chi.URLParam(r, "deckID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	var req DeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		h.RespondError(w, http.StatusBadRequest, "title cannot be empty")
		return
	}

	deck, err := h.service.UpdateDeck(r.Context(), userID, deckID, req.Title, req.Description)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, deck)
}

// DeleteDeck handles DELETE /api/v1/decks/{deckID}
// @Summary Delete a deck
// @Description Delete a deck with its cards, progress and sessions. Owner only. Requires authentication.
// @Tags decks
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - only the owner may delete"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID} [delete]
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, err := strconv.Atoi(chi.URLParam(r, "deckID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid deck ID")
		return
	}

	if err := h.service.DeleteDeck(r.Context(), userID, deckID); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
