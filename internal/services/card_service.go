package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// CardRepository is the interface that wraps methods for Card table data access
type CardRepository interface {
	// GetByID retrieves a single card.
	GetByID(ctx context.Context, cardID int) (models.Card, error)
	// GetByDeck retrieves all cards in a deck.
	GetByDeck(ctx context.Context, deckID int) ([]models.Card, error)
	// Create inserts a new card and returns its ID.
	Create(ctx context.Context, card models.Card) (int, error)
	// Update overwrites a card's content fields.
	Update(ctx context.Context, card models.Card) error
	// Delete removes a card with its progress records and reviews.
	Delete(ctx context.Context, cardID int) error
}

// CardDeckPermissions is the interface for deck permission checks consumed
// by card management
type CardDeckPermissions interface {
	// CanViewDeck reports whether the user may view the deck.
	CanViewDeck(ctx context.Context, userID, deckID int) (bool, error)
	// CanEditDeck reports whether the user may modify the deck's cards.
	CanEditDeck(ctx context.Context, userID, deckID int) (bool, error)
}

// cardService implements card management within decks
type cardService struct {
	cardRepo    CardRepository
	permissions CardDeckPermissions
	logger      *zap.Logger
	now         func() time.Time
}

// NewCardService creates a new card service
func NewCardService(cardRepo CardRepository, permissions CardDeckPermissions, logger *zap.Logger) *cardService {
	return &cardService{
		cardRepo:    cardRepo,
		permissions: permissions,
		logger:      logger,
		now:         time.Now,
	}
}

// ListCards returns all cards in a deck the user may view
func (s *cardService) ListCards(ctx context.Context, userID, deckID int) ([]models.Card, error) {
	canView, err := s.permissions.CanViewDeck(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, fmt.Errorf("user %d cannot view deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	cards, err := s.cardRepo.GetByDeck(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to list cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}

	return cards, nil
}

// CreateCard adds a card to a deck the user may edit
func (s *cardService) CreateCard(ctx context.Context, userID int, card models.Card) (models.Card, error) {
	canEdit, err := s.permissions.CanEditDeck(ctx, userID, card.DeckID)
	if err != nil {
		return models.Card{}, err
	}
	if !canEdit {
		return models.Card{}, fmt.Errorf("user %d cannot edit deck %d: %w", userID, card.DeckID, models.ErrForbidden)
	}

	card.CreatedAt = s.now()

	cardID, err := s.cardRepo.Create(ctx, card)
	if err != nil {
		s.logger.Error("failed to create card", zap.Error(err))
		return models.Card{}, fmt.Errorf("failed to create card: %w", err)
	}
	card.ID = cardID

	return card, nil
}

// UpdateCard overwrites a card's content fields
func (s *cardService) UpdateCard(ctx context.Context, userID int, card models.Card) (models.Card, error) {
	existing, err := s.cardRepo.GetByID(ctx, card.ID)
	if err != nil {
		return models.Card{}, err
	}

	canEdit, err := s.permissions.CanEditDeck(ctx, userID, existing.DeckID)
	if err != nil {
		return models.Card{}, err
	}
	if !canEdit {
		return models.Card{}, fmt.Errorf("user %d cannot edit deck %d: %w", userID, existing.DeckID, models.ErrForbidden)
	}

	existing.ContentA = card.ContentA
	existing.ContentB = card.ContentB
	existing.LanguageA = card.LanguageA
	existing.LanguageB = card.LanguageB
	existing.Context = card.Context

	if err := s.cardRepo.Update(ctx, existing); err != nil {
		s.logger.Error("failed to update card", zap.Error(err))
		return models.Card{}, fmt.Errorf("failed to update card: %w", err)
	}

	return existing, nil
}

// DeleteCard removes a card from a deck the user may edit
func (s *cardService) DeleteCard(ctx context.Context, userID, cardID int) error {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}

	canEdit, err := s.permissions.CanEditDeck(ctx, userID, card.DeckID)
	if err != nil {
		return err
	}
	if !canEdit {
		return fmt.Errorf("user %d cannot edit deck %d: %w", userID, card.DeckID, models.ErrForbidden)
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		s.logger.Error("failed to delete card", zap.Error(err))
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
