package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// progressRepository implements ProgressRepository over the card_progress
// and reviews tables
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// GetOrCreate returns the progress record for (user, card, direction),
// creating it with scheduling defaults on first access.
//
// The insert relies on the unique key over (user_id, card_id, direction):
// two concurrent first reviews both run the upsert, exactly one row is
// created, and both callers read the same record back. There is no
// check-then-insert window.
func (r *progressRepository) GetOrCreate(ctx context.Context, userID, cardID int, direction models.Direction, now time.Time) (models.CardProgress, error) {
	insert := `
		INSERT INTO card_progress (user_id, card_id, direction, ease_factor, interval_days, repetitions, next_review_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE id = id
	`

	_, err := r.db.ExecContext(ctx, insert,
		userID, cardID, string(direction),
		models.DefaultEaseFactor, models.DefaultIntervalDays, 0, now,
	)
	if err != nil {
		return models.CardProgress{}, fmt.Errorf("failed to upsert progress record: %w", err)
	}

	query := `
		SELECT id, user_id, card_id, direction, ease_factor, interval_days, repetitions, next_review_at
		FROM card_progress
		WHERE user_id = ? AND card_id = ? AND direction = ?
	`

	var p models.CardProgress
	err = r.db.QueryRowContext(ctx, query, userID, cardID, string(direction)).Scan(
		&p.ID, &p.UserID, &p.CardID, &p.Direction,
		&p.EaseFactor, &p.IntervalDays, &p.Repetitions, &p.NextReviewAt,
	)
	if err == sql.ErrNoRows {
		// The upsert succeeded, so a missing row means a concurrent
		// delete raced us. Retryable, not corruption.
		return models.CardProgress{}, fmt.Errorf("progress record vanished after upsert: %w", models.ErrConflict)
	}
	if err != nil {
		return models.CardProgress{}, fmt.Errorf("failed to read progress record: %w", err)
	}

	return p, nil
}

// SaveWithReview overwrites the progress record and appends the review log
// entry in a single transaction. Due-card computation depends only on the
// progress row, so the two writes must never be observable half-done.
func (r *progressRepository) SaveWithReview(ctx context.Context, progress models.CardProgress, review models.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	update := `
		UPDATE card_progress
		SET ease_factor = ?, interval_days = ?, repetitions = ?, next_review_at = ?
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, update,
		progress.EaseFactor, progress.IntervalDays, progress.Repetitions, progress.NextReviewAt,
		progress.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update progress record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("progress record %d missing on save: %w", progress.ID, models.ErrConflict)
	}

	insert := `
		INSERT INTO reviews (progress_id, session_id, quality, direction, time_taken, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err = tx.ExecContext(ctx, insert,
		progress.ID, review.SessionID, review.Quality, string(review.Direction),
		review.TimeTakenSeconds, review.ReviewedAt,
	); err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review transaction: %w", err)
	}

	return nil
}

// FindDue returns due progress records for the user's cards in a deck and
// direction, oldest due first, capped at limit. Cards never reviewed in
// that direction have no progress row yet and are returned as fresh
// default records (ID 0), due immediately; the row itself is only created
// when the first review is submitted.
func (r *progressRepository) FindDue(ctx context.Context, userID, deckID int, direction models.Direction, now time.Time, limit int) ([]models.CardProgress, error) {
	query := `
		SELECT c.id, p.id, p.ease_factor, p.interval_days, p.repetitions, p.next_review_at
		FROM cards c
		LEFT JOIN card_progress p
			ON p.card_id = c.id AND p.user_id = ? AND p.direction = ?
		WHERE c.deck_id = ? AND (p.id IS NULL OR p.next_review_at <= ?)
		ORDER BY COALESCE(p.next_review_at, ?) ASC, c.id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query,
		userID, string(direction), deckID, now, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query due progress records: %w", err)
	}
	defer rows.Close()

	var records []models.CardProgress
	for rows.Next() {
		var (
			cardID       int
			progressID   sql.NullInt64
			easeFactor   sql.NullFloat64
			intervalDays sql.NullInt64
			repetitions  sql.NullInt64
			nextReviewAt sql.NullTime
		)
		if err := rows.Scan(&cardID, &progressID, &easeFactor, &intervalDays, &repetitions, &nextReviewAt); err != nil {
			return nil, fmt.Errorf("failed to scan due progress record: %w", err)
		}

		if !progressID.Valid {
			records = append(records, models.NewCardProgress(userID, cardID, direction, now))
			continue
		}

		records = append(records, models.CardProgress{
			ID:           int(progressID.Int64),
			UserID:       userID,
			CardID:       cardID,
			Direction:    direction,
			EaseFactor:   easeFactor.Float64,
			IntervalDays: int(intervalDays.Int64),
			Repetitions:  int(repetitions.Int64),
			NextReviewAt: nextReviewAt.Time,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due progress records: %w", err)
	}

	return records, nil
}

// GetByUserAndDeck returns all existing progress records the user has for
// cards in a deck, both directions
func (r *progressRepository) GetByUserAndDeck(ctx context.Context, userID, deckID int) ([]models.CardProgress, error) {
	query := `
		SELECT p.id, p.user_id, p.card_id, p.direction, p.ease_factor, p.interval_days, p.repetitions, p.next_review_at
		FROM card_progress p
		INNER JOIN cards c ON c.id = p.card_id
		WHERE p.user_id = ? AND c.deck_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress records: %w", err)
	}
	defer rows.Close()

	var records []models.CardProgress
	for rows.Next() {
		var p models.CardProgress
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.CardID, &p.Direction,
			&p.EaseFactor, &p.IntervalDays, &p.Repetitions, &p.NextReviewAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		records = append(records, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress records: %w", err)
	}

	return records, nil
}

// CountDueCards counts cards in a deck that are due for the user in at
// least one direction. A direction with no progress row counts as due.
func (r *progressRepository) CountDueCards(ctx context.Context, userID, deckID int, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM cards c
		WHERE c.deck_id = ?
			AND (
				SELECT COUNT(*)
				FROM card_progress p
				WHERE p.card_id = c.id AND p.user_id = ? AND p.next_review_at > ?
			) < 2
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, deckID, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count due cards: %w", err)
	}

	return count, nil
}

// CountDueRecords counts the user's due progress records across all decks
func (r *progressRepository) CountDueRecords(ctx context.Context, userID int, now time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM card_progress
		WHERE user_id = ? AND next_review_at <= ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count due records: %w", err)
	}

	return count, nil
}
