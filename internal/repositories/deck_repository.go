package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// deckRepository implements DeckRepository over the decks and
// partnership_decks tables
type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *sql.DB) *deckRepository {
	return &deckRepository{
		db: db,
	}
}

// sharedSubquery marks a deck shared when it is linked to an active
// partnership. Dissolving a partnership unlinks its decks, so stale links
// only exist for deactivated rows and are excluded here.
const sharedSubquery = `EXISTS (
		SELECT 1 FROM partnership_decks pd
		INNER JOIN partnerships p ON p.id = pd.partnership_id AND p.is_active = 1
		WHERE pd.deck_id = d.id
	)`

// GetByID retrieves a deck
func (r *deckRepository) GetByID(ctx context.Context, deckID int) (models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.user_id, d.created_by, d.title, d.description, d.created_at, d.updated_at, %s
		FROM decks d
		WHERE d.id = ?
	`, sharedSubquery)

	var deck models.Deck
	err := r.db.QueryRowContext(ctx, query, deckID).Scan(
		&deck.ID, &deck.UserID, &deck.CreatedBy, &deck.Title, &deck.Description,
		&deck.CreatedAt, &deck.UpdatedAt, &deck.Shared,
	)
	if err == sql.ErrNoRows {
		return models.Deck{}, fmt.Errorf("deck %d: %w", deckID, models.ErrNotFound)
	}
	if err != nil {
		return models.Deck{}, fmt.Errorf("failed to query deck: %w", err)
	}

	return deck, nil
}

// GetByUser retrieves all decks owned by a user, most recently updated first
func (r *deckRepository) GetByUser(ctx context.Context, userID int) ([]models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT d.id, d.user_id, d.created_by, d.title, d.description, d.created_at, d.updated_at, %s
		FROM decks d
		WHERE d.user_id = ?
		ORDER BY d.updated_at DESC
	`, sharedSubquery)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user decks: %w", err)
	}
	defer rows.Close()

	return collectDecks(rows)
}

// GetByPartnership retrieves the decks shared with a partnership
func (r *deckRepository) GetByPartnership(ctx context.Context, partnershipID int) ([]models.Deck, error) {
	query := `
		SELECT d.id, d.user_id, d.created_by, d.title, d.description, d.created_at, d.updated_at, 1
		FROM decks d
		INNER JOIN partnership_decks pd ON pd.deck_id = d.id
		WHERE pd.partnership_id = ?
		ORDER BY d.updated_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, partnershipID)
	if err != nil {
		return nil, fmt.Errorf("failed to query partnership decks: %w", err)
	}
	defer rows.Close()

	return collectDecks(rows)
}

func collectDecks(rows *sql.Rows) ([]models.Deck, error) {
	var decks []models.Deck
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(
			&deck.ID, &deck.UserID, &deck.CreatedBy, &deck.Title, &deck.Description,
			&deck.CreatedAt, &deck.UpdatedAt, &deck.Shared,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decks: %w", err)
	}

	return decks, nil
}

// IsLinked reports whether a deck is shared with a partnership
func (r *deckRepository) IsLinked(ctx context.Context, deckID, partnershipID int) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM partnership_decks
		WHERE deck_id = ? AND partnership_id = ?
	`

	var count int
	if err := r.db.QueryRowContext(ctx, query, deckID, partnershipID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check deck link: %w", err)
	}

	return count > 0, nil
}

// Create inserts a new deck and returns its ID
func (r *deckRepository) Create(ctx context.Context, deck models.Deck) (int, error) {
	query := `
		INSERT INTO decks (user_id, created_by, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		deck.UserID, deck.CreatedBy, deck.Title, deck.Description,
		deck.CreatedAt, deck.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert deck: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get deck ID: %w", err)
	}

	return int(id), nil
}

// Update overwrites a deck's title and description
func (r *deckRepository) Update(ctx context.Context, deck models.Deck) error {
	query := `
		UPDATE decks
		SET title = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, deck.Title, deck.Description, deck.UpdatedAt, deck.ID)
	if err != nil {
		return fmt.Errorf("failed to update deck: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("deck %d: %w", deck.ID, models.ErrNotFound)
	}

	return nil
}

// Delete removes a deck. Cards, progress and sessions cascade at the
// schema level.
func (r *deckRepository) Delete(ctx context.Context, deckID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, deckID)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("deck %d: %w", deckID, models.ErrNotFound)
	}

	return nil
}

// LinkToPartnership shares a deck with a partnership
func (r *deckRepository) LinkToPartnership(ctx context.Context, deckID, partnershipID int) error {
	query := `
		INSERT INTO partnership_decks (partnership_id, deck_id)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE deck_id = deck_id
	`

	if _, err := r.db.ExecContext(ctx, query, partnershipID, deckID); err != nil {
		return fmt.Errorf("failed to link deck to partnership: %w", err)
	}

	return nil
}

// UnlinkPartnership removes all deck links for a partnership. The decks
// themselves survive dissolution.
func (r *deckRepository) UnlinkPartnership(ctx context.Context, partnershipID int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM partnership_decks WHERE partnership_id = ?`, partnershipID); err != nil {
		return fmt.Errorf("failed to unlink partnership decks: %w", err)
	}

	return nil
}
