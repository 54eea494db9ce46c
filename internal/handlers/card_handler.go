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

// CardService is the interface that wraps methods for card business logic
type CardService interface {
	// ListCards returns all cards in a deck the user may view.
	ListCards(ctx context.Context, userID, deckID int) ([]models.Card, error)
	// CreateCard adds a card to a deck the user may edit.
	CreateCard(ctx context.Context, userID int, card models.Card) (models.Card, error)
	// UpdateCard overwrites a card's content fields.
	UpdateCard(ctx context.Context, userID int, card models.Card) (models.Card, error)
	// DeleteCard removes a card with its progress records and reviews.
	DeleteCard(ctx context.Context, userID, cardID int) error
}

// CardHandler handles card management HTTP requests
type CardHandler struct {
	BaseHandler
	service CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(service CardService, logger *zap.Logger) *CardHandler {
	return &CardHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all card handler routes
func (h *CardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/decks/{deckID}/cards", h.ListCards)
		r.Post("/decks/{deckID}/cards", h.CreateCard)
		r.Put("/cards/{cardID}", h.UpdateCard)
		r.Delete("/cards/{cardID}", h.DeleteCard)
	})
}

// CardRequest represents a card create or update request
type CardRequest struct {
	ContentA  string `json:"contentA"`
	ContentB  string `json:"contentB"`
	LanguageA string `json:"languageA"`
	LanguageB string `json:"languageB"`
	Context   string `json:"context"`
}

func (req *CardRequest) validate() string {
	if strings.TrimSpace(req.ContentA) == "" || strings.TrimSpace(req.ContentB) == "" {
		return "contentA and contentB cannot be empty"
	}
	return ""
}

// ListCards handles GET /api/v1/decks/{deckID}/cards
// @Summary List cards
// @Description List all cards in a deck. Requires authentication.
// @Tags cards
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {array} models.Card "Cards"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not accessible"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards [get]
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
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

	cards, err := h.service.ListCards(r.Context(), userID, deckID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, cards)
}

// CreateCard handles POST /api/v1/decks/{deckID}/cards
// @Summary Create a card
// @Description Add a card to a deck. Requires authentication.
// @Tags cards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param request body CardRequest true "Card content"
// @Success 201 {object} models.Card "Created card"
// @Failure 400 {object} map[string]string "Bad request - missing content"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not editable"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
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

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		h.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	card, err := h.service.CreateCard(r.Context(), userID, models.Card{
		DeckID:    deckID,
		ContentA:  req.ContentA,
		ContentB:  req.ContentB,
		LanguageA: req.LanguageA,
		LanguageB: req.LanguageB,
		Context:   req.Context,
	})
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, card)
}

// UpdateCard handles PUT /api/v1/cards/{cardID}
// @Summary Update a card
// @Description Overwrite a card's content fields. Scheduling state is untouched. Requires authentication.
// @Tags cards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Param request body CardRequest true "Card content"
// @Success 200 {object} models.Card "Updated card"
// @Failure 400 {object} map[string]string "Bad request - missing content"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not editable"
// @Failure 404 {object} map[string]string "Not found - unknown card"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID} [put]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, err := strconv.Atoi(chi.URLParam(r, "cardID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := req.validate(); msg != "" {
		h.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	card, err := h.service.UpdateCard(r.Context(), userID, models.Card{
		ID:        cardID,
		ContentA:  req.ContentA,
		ContentB:  req.ContentB,
		LanguageA: req.LanguageA,
		LanguageB: req.LanguageB,
		Context:   req.Context,
	})
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, card)
}

// DeleteCard handles DELETE /api/v1/cards/{cardID}
// @Summary Delete a card
// @Description Delete a card with its progress records and reviews. Requires authentication.
// @Tags cards
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not editable"
// @Failure 404 {object} map[string]string "Not found - unknown card"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID} [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, err := strconv.Atoi(chi.URLParam(r, "cardID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid card ID")
		return
	}

	if err := h.service.DeleteCard(r.Context(), userID, cardID); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
