package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// sessionRepository implements SessionRepository over the study_sessions
// and session_cards tables
type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *sessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create inserts the session together with its drawn card list and returns
// the new session ID. The drawn directions are what submissions are later
// validated against, so they are written in the same transaction as the
// session row.
func (r *sessionRepository) Create(ctx context.Context, session models.StudySession, cards []models.SessionCard) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var direction sql.NullString
	if session.Direction != nil {
		direction = sql.NullString{String: string(*session.Direction), Valid: true}
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO study_sessions (user_id, deck_id, direction, started_at, cards_studied)
		VALUES (?, ?, ?, ?, 0)
	`, session.UserID, session.DeckID, direction, session.StartedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert study session: %w", err)
	}

	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}

	if len(cards) > 0 {
		placeholders := make([]string, len(cards))
		args := []any{}
		for i, card := range cards {
			placeholders[i] = "(?, ?, ?, ?)"
			args = append(args, sessionID, card.CardID, string(card.Direction), i)
		}

		query := fmt.Sprintf(`
			INSERT INTO session_cards (session_id, card_id, direction, position)
			VALUES %s
		`, strings.Join(placeholders, ","))

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("failed to insert session cards: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return int(sessionID), nil
}

// GetByID retrieves a study session
func (r *sessionRepository) GetByID(ctx context.Context, sessionID int) (models.StudySession, error) {
	query := `
		SELECT id, user_id, deck_id, direction, started_at, ended_at, cards_studied
		FROM study_sessions
		WHERE id = ?
	`

	var (
		session   models.StudySession
		direction sql.NullString
		endedAt   sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID, &session.UserID, &session.DeckID,
		&direction, &session.StartedAt, &endedAt, &session.CardsStudied,
	)
	if err == sql.ErrNoRows {
		return models.StudySession{}, fmt.Errorf("session %d: %w", sessionID, models.ErrNotFound)
	}
	if err != nil {
		return models.StudySession{}, fmt.Errorf("failed to query session: %w", err)
	}

	if direction.Valid {
		d := models.Direction(direction.String)
		session.Direction = &d
	}
	if endedAt.Valid {
		t := endedAt.Time
		session.EndedAt = &t
	}

	return session, nil
}

// GetSessionCard retrieves the drawn direction for a card in a session
func (r *sessionRepository) GetSessionCard(ctx context.Context, sessionID, cardID int) (models.SessionCard, error) {
	query := `
		SELECT session_id, card_id, direction, position
		FROM session_cards
		WHERE session_id = ? AND card_id = ?
	`

	var (
		card      models.SessionCard
		direction string
	)
	err := r.db.QueryRowContext(ctx, query, sessionID, cardID).Scan(
		&card.SessionID, &card.CardID, &direction, &card.Position,
	)
	if err == sql.ErrNoRows {
		return models.SessionCard{}, fmt.Errorf("card %d not in session %d: %w", cardID, sessionID, models.ErrNotFound)
	}
	if err != nil {
		return models.SessionCard{}, fmt.Errorf("failed to query session card: %w", err)
	}
	card.Direction = models.Direction(direction)

	return card, nil
}

// IncrementCardsStudied bumps the session's review counter
func (r *sessionRepository) IncrementCardsStudied(ctx context.Context, sessionID int) error {
	query := `
		UPDATE study_sessions
		SET cards_studied = cards_studied + 1
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to increment cards studied: %w", err)
	}

	return nil
}

// End marks the session ended. Ending an already-ended session is a no-op;
// the first ended_at wins.
func (r *sessionRepository) End(ctx context.Context, sessionID int, endedAt time.Time) error {
	query := `
		UPDATE study_sessions
		SET ended_at = ?
		WHERE id = ? AND ended_at IS NULL
	`

	if _, err := r.db.ExecContext(ctx, query, endedAt, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}
