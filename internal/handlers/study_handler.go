package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vr1e/flashcard-study-sub000/internal/auth"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// StudyService is the interface that wraps methods for study session business logic
type StudyService interface {
	// StartSession opens a study session over a deck with the requested
	// direction choice and returns the drawn card list. An empty list is a
	// valid session.
	StartSession(ctx context.Context, userID, deckID int, choice models.DirectionChoice) (models.SessionStart, error)
	// SubmitReview applies one quality rating to a card drawn for the
	// session and returns the updated schedule.
	SubmitReview(ctx context.Context, userID, sessionID, cardID int, direction models.Direction, quality, timeTakenSeconds int) (models.ScheduleResult, error)
	// EndSession completes the session and returns its summary.
	EndSession(ctx context.Context, userID, sessionID int) (models.SessionSummary, error)
}

// StudyHandler handles study session HTTP requests
type StudyHandler struct {
	BaseHandler
	service StudyService
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(service StudyService, logger *zap.Logger) *StudyHandler {
	return &StudyHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all study handler routes
func (h *StudyHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/decks/{deckID}/study", h.StartSession)
		r.Post("/study/sessions/{sessionID}/reviews", h.SubmitReview)
		r.Post("/study/sessions/{sessionID}/end", h.EndSession)
	})
}

// StartSessionRequest represents a session start request
type StartSessionRequest struct {
	Direction models.DirectionChoice `json:"direction"`
}

// StartSession handles POST /api/v1/decks/{deckID}/study
// @Summary Start a study session
// @Description Start a study session over a deck with a fixed or random card direction. Requires authentication.
// @Tags study
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param request body StartSessionRequest true "Direction choice: a_to_b, b_to_a or random"
// @Success 201 {object} models.SessionStart "Session with its drawn cards"
// @Failure 400 {object} map[string]string "Bad request - invalid direction choice"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - deck not accessible"
// @Failure 404 {object} map[string]string "Not found - unknown deck"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/study [post]
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
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

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := h.service.StartSession(r.Context(), userID, deckID, req.Direction)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, start)
}

// SubmitReviewRequest represents a review submission request
type SubmitReviewRequest struct {
	CardID           int              `json:"cardId"`
	Direction        models.Direction `json:"direction"`
	Quality          int              `json:"quality"`
	TimeTakenSeconds int              `json:"timeTakenSeconds"`
}

// SubmitReview handles POST /api/v1/study/sessions/{sessionID}/reviews
// @Summary Submit a card review
// @Description Submit one quality rating (0-5) for a card drawn in the session. Returns the updated schedule. Requires authentication.
// @Tags study
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path int true "Session ID"
// @Param request body SubmitReviewRequest true "Review"
// @Success 200 {object} models.ScheduleResult "Updated schedule"
// @Failure 400 {object} map[string]string "Bad request - invalid quality or direction"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - session belongs to another user"
// @Failure 404 {object} map[string]string "Not found - unknown session or card not drawn"
// @Failure 409 {object} map[string]string "Conflict - session already ended"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /study/sessions/{sessionID}/reviews [post]
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	sessionID, err := strconv.Atoi(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.SubmitReview(r.Context(), userID, sessionID, req.CardID, req.Direction, req.Quality, req.TimeTakenSeconds)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// EndSession handles POST /api/v1/study/sessions/{sessionID}/end
// @Summary End a study session
// @Description End a study session and get its summary. Ending twice returns the same summary. Requires authentication.
// @Tags study
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path int true "Session ID"
// @Success 200 {object} models.SessionSummary "Session summary"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 403 {object} map[string]string "Forbidden - session belongs to another user"
// @Failure 404 {object} map[string]string "Not found - unknown session"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /study/sessions/{sessionID}/end [post]
func (h *StudyHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	sessionID, err := strconv.Atoi(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	summary, err := h.service.EndSession(r.Context(), userID, sessionID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, summary)
}
