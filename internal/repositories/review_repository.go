package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// reviewRepository implements read-only aggregates over the append-only
// reviews table. Review rows are written by the progress repository inside
// the review-submission transaction; nothing ever mutates them afterwards.
type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *reviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// GetSessionAverageQuality returns the mean quality across a session's
// reviews, or nil when the session has none. A session with zero reviews
// has no defined average; it must not read as 0.0.
func (r *reviewRepository) GetSessionAverageQuality(ctx context.Context, sessionID int) (*float64, error) {
	query := `
		SELECT AVG(quality)
		FROM reviews
		WHERE session_id = ?
	`

	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&avg); err != nil {
		return nil, fmt.Errorf("failed to query session average quality: %w", err)
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// GetUserStats aggregates the user's review history across all decks
func (r *reviewRepository) GetUserStats(ctx context.Context, userID int) (models.UserStats, error) {
	query := `
		SELECT COUNT(rv.id), COUNT(DISTINCT rv.progress_id), AVG(rv.quality)
		FROM reviews rv
		INNER JOIN card_progress p ON p.id = rv.progress_id
		WHERE p.user_id = ?
	`

	var (
		stats models.UserStats
		avg   sql.NullFloat64
	)
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalReviews, &stats.CardsStudied, &avg,
	); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to query user review stats: %w", err)
	}
	if avg.Valid {
		stats.AverageQuality = &avg.Float64
	}

	sessionQuery := `SELECT COUNT(*) FROM study_sessions WHERE user_id = ?`
	if err := r.db.QueryRowContext(ctx, sessionQuery, userID).Scan(&stats.SessionCount); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to count sessions: %w", err)
	}

	return stats, nil
}

// GetDeckReviewStats aggregates the user's review history for one deck
func (r *reviewRepository) GetDeckReviewStats(ctx context.Context, userID, deckID int) (int, *float64, error) {
	query := `
		SELECT COUNT(rv.id), AVG(rv.quality)
		FROM reviews rv
		INNER JOIN card_progress p ON p.id = rv.progress_id
		INNER JOIN cards c ON c.id = p.card_id
		WHERE p.user_id = ? AND c.deck_id = ?
	`

	var (
		total int
		avg   sql.NullFloat64
	)
	if err := r.db.QueryRowContext(ctx, query, userID, deckID).Scan(&total, &avg); err != nil {
		return 0, nil, fmt.Errorf("failed to query deck review stats: %w", err)
	}

	if !avg.Valid {
		return total, nil, nil
	}
	return total, &avg.Float64, nil
}
