package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// cardRepository implements CardRepository over the cards table
type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *sql.DB) *cardRepository {
	return &cardRepository{
		db: db,
	}
}

const cardColumns = "id, deck_id, content_a, content_b, language_a, language_b, context, created_at"

func scanCard(row interface{ Scan(...any) error }) (models.Card, error) {
	var card models.Card
	err := row.Scan(
		&card.ID, &card.DeckID, &card.ContentA, &card.ContentB,
		&card.LanguageA, &card.LanguageB, &card.Context, &card.CreatedAt,
	)
	return card, err
}

// GetByID retrieves a single card
func (r *cardRepository) GetByID(ctx context.Context, cardID int) (models.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE id = ?`, cardColumns)

	card, err := scanCard(r.db.QueryRowContext(ctx, query, cardID))
	if err == sql.ErrNoRows {
		return models.Card{}, fmt.Errorf("card %d: %w", cardID, models.ErrNotFound)
	}
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to query card: %w", err)
	}

	return card, nil
}

// GetByDeck retrieves all cards in a deck
func (r *cardRepository) GetByDeck(ctx context.Context, deckID int) ([]models.Card, error) {
	query := fmt.Sprintf(`SELECT %s FROM cards WHERE deck_id = ? ORDER BY id`, cardColumns)

	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deck cards: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

// GetByIDs retrieves cards by their IDs
func (r *cardRepository) GetByIDs(ctx context.Context, cardIDs []int) ([]models.Card, error) {
	if len(cardIDs) == 0 {
		return []models.Card{}, nil
	}

	placeholders := make([]string, len(cardIDs))
	args := make([]any, len(cardIDs))
	for i, id := range cardIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT %s FROM cards WHERE id IN (%s)`,
		cardColumns, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards by IDs: %w", err)
	}
	defer rows.Close()

	return collectCards(rows)
}

func collectCards(rows *sql.Rows) ([]models.Card, error) {
	var cards []models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, nil
}

// Create inserts a new card and returns its ID
func (r *cardRepository) Create(ctx context.Context, card models.Card) (int, error) {
	query := `
		INSERT INTO cards (deck_id, content_a, content_b, language_a, language_b, context, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		card.DeckID, card.ContentA, card.ContentB,
		card.LanguageA, card.LanguageB, card.Context, card.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get card ID: %w", err)
	}

	return int(id), nil
}

// Update overwrites a card's content fields
func (r *cardRepository) Update(ctx context.Context, card models.Card) error {
	query := `
		UPDATE cards
		SET content_a = ?, content_b = ?, language_a = ?, language_b = ?, context = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		card.ContentA, card.ContentB, card.LanguageA, card.LanguageB, card.Context,
		card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("card %d: %w", card.ID, models.ErrNotFound)
	}

	return nil
}

// Delete removes a card. Progress records and reviews cascade at the
// schema level.
func (r *cardRepository) Delete(ctx context.Context, cardID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("card %d: %w", cardID, models.ErrNotFound)
	}

	return nil
}

// CountByDeck returns the number of cards in a deck
func (r *cardRepository) CountByDeck(ctx context.Context, deckID int) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE deck_id = ?`, deckID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}

	return count, nil
}
