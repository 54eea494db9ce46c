package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vr1e/flashcard-study-sub000/internal/auth"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// PartnershipService is the interface that wraps methods for partnership business logic
type PartnershipService interface {
	// Invite creates an invitation code for the user.
	Invite(ctx context.Context, userID int) (models.PartnershipInvitation, error)
	// Accept redeems an invitation code and forms the partnership.
	Accept(ctx context.Context, userID int, code string) (models.Partnership, error)
	// Get reports the user's active partnership with its shared decks.
	Get(ctx context.Context, userID int) (models.PartnershipView, error)
	// Dissolve deactivates the user's partnership and unlinks its decks.
	Dissolve(ctx context.Context, userID int) error
}

// PartnershipHandler handles partnership HTTP requests
type PartnershipHandler struct {
	BaseHandler
	service PartnershipService
}

// NewPartnershipHandler creates a new partnership handler
func NewPartnershipHandler(service PartnershipService, logger *zap.Logger) *PartnershipHandler {
	return &PartnershipHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all partnership handler routes
func (h *PartnershipHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/partnership", h.Get)
		r.Delete("/partnership", h.Dissolve)
		r.Post("/partnership/invite", h.Invite)
		r.Post("/partnership/accept", h.Accept)
	})
}

// Invite handles POST /api/v1/partnership/invite
// @Summary Create a partnership invitation
// @Description Create an invitation code the partner can accept within 7 days. Requires authentication.
// @Tags partnership
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} models.PartnershipInvitation "Invitation"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 409 {object} map[string]string "Conflict - already in a partnership"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partnership/invite [post]
func (h *PartnershipHandler) Invite(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	inv, err := h.service.Invite(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, inv)
}

// AcceptInvitationRequest represents an invitation acceptance request
type AcceptInvitationRequest struct {
	Code string `json:"code"`
}

// Accept handles POST /api/v1/partnership/accept
// @Summary Accept a partnership invitation
// @Description Redeem an invitation code and form the partnership. Requires authentication.
// @Tags partnership
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AcceptInvitationRequest true "Invitation code"
// @Success 201 {object} models.Partnership "Partnership"
// @Failure 400 {object} map[string]string "Bad request - missing code"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 404 {object} map[string]string "Not found - unknown code"
// @Failure 409 {object} map[string]string "Conflict - code expired, used, or a member already partnered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partnership/accept [post]
func (h *PartnershipHandler) Accept(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		h.RespondError(w, http.StatusBadRequest, "code cannot be empty")
		return
	}

	partnership, err := h.service.Accept(r.Context(), userID, req.Code)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, partnership)
}

// Get handles GET /api/v1/partnership
// @Summary Get the active partnership
// @Description Get the user's active partnership with its shared decks. Requires authentication.
// @Tags partnership
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.PartnershipView "Partnership with shared decks"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 404 {object} map[string]string "Not found - no active partnership"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partnership [get]
func (h *PartnershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	view, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, view)
}

// Dissolve handles DELETE /api/v1/partnership
// @Summary Dissolve the partnership
// @Description Deactivate the partnership and unlink its shared decks. The decks survive with their owners. Requires authentication.
// @Tags partnership
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized - authentication required"
// @Failure 404 {object} map[string]string "Not found - no active partnership"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partnership [delete]
func (h *PartnershipHandler) Dissolve(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	if err := h.service.Dissolve(r.Context(), userID); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
