package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps service errors to HTTP responses. Domain
// errors keep their message; anything unrecognized becomes an opaque 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrInvalidQuality),
		errors.Is(err, models.ErrDirectionMismatch),
		errors.Is(err, models.ErrNoPartnership):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrSessionEnded),
		errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.Logger.Error("internal error", zap.Error(err))
		h.RespondError(w, status, "internal server error")
		return
	}

	h.RespondError(w, status, err.Error())
}
