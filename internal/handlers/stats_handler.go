package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vr1e/flashcard-study-sub000/internal/auth"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// StatsService is the interface that wraps methods for statistics business logic
type StatsService interface {
	// GetUserStats returns the user's study statistics across all decks.
	GetUserStats(ctx context.Context, userID int) (models.UserStats, error)
	// GetDeckStats returns the user's study statistics for one deck.
	GetDeckStats(ctx context.Context, userID, deckID int) (models.DeckStats, error)
}

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	BaseHandler
	service StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all stats handler routes
func (h *StatsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/stats", h.GetUserStats)
		r.Get("/decks/{deckID}/stats", h.GetDeckStats)
	})
}

// GetUserStats handles GET /api/v1/stats
// @Summary Get user statistics
// @Description Get the user's study statistics across all decks. Requires authentication.
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserStats "User statistics"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	stats, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}

// GetDeckStats handles GET /api/v1/decks/{deckID}/stats
// @Summary Get deck statistics
// @Description Get the user's study statistics for one deck. Requires authentication.
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.DeckStats "Deck statistics"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not accessible"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/stats [get]
func (h *StatsHandler) GetDeckStats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.service.GetDeckStats(r.Context(), userID, deckID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, stats)
}
