package models

import "errors"

// Sentinel errors shared across services and handlers. Repositories and
// services wrap these with context; handlers map them to HTTP statuses
// with errors.Is.
var (
	// ErrInvalidQuality is returned for a quality rating outside [0, 5].
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")

	// ErrDirectionMismatch is returned when a submitted direction does not
	// match the direction the session presented the card with.
	ErrDirectionMismatch = errors.New("direction does not match session")

	// ErrForbidden is returned when the user has no access to the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for unknown decks, cards, sessions or codes.
	ErrNotFound = errors.New("not found")

	// ErrSessionEnded is returned for submissions to a completed session.
	ErrSessionEnded = errors.New("session already ended")

	// ErrConflict is returned for storage-level races that the atomic
	// upsert did not absorb, and for invitations accepted twice.
	// Retryable; never a sign of corrupted state.
	ErrConflict = errors.New("storage conflict")

	// ErrNoPartnership is returned when an operation requires an active
	// partnership and the user has none.
	ErrNoPartnership = errors.New("no active partnership")
)
