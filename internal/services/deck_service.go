package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// DeckRepository is the interface that wraps methods for Deck table data access
type DeckRepository interface {
	// GetByID retrieves a deck.
	GetByID(ctx context.Context, deckID int) (models.Deck, error)
	// GetByUser retrieves all decks owned by a user.
	GetByUser(ctx context.Context, userID int) ([]models.Deck, error)
	// GetByPartnership retrieves the decks shared with a partnership.
	GetByPartnership(ctx context.Context, partnershipID int) ([]models.Deck, error)
	// IsLinked reports whether a deck is shared with a partnership.
	IsLinked(ctx context.Context, deckID, partnershipID int) (bool, error)
	// Create inserts a new deck and returns its ID.
	Create(ctx context.Context, deck models.Deck) (int, error)
	// Update overwrites a deck's title and description.
	Update(ctx context.Context, deck models.Deck) error
	// Delete removes a deck with its cards, progress and sessions.
	Delete(ctx context.Context, deckID int) error
	// LinkToPartnership shares a deck with a partnership.
	LinkToPartnership(ctx context.Context, deckID, partnershipID int) error
}

// DeckCardRepository is the interface that wraps card lookups used by deck views
type DeckCardRepository interface {
	// GetByDeck retrieves all cards in a deck.
	GetByDeck(ctx context.Context, deckID int) ([]models.Card, error)
}

// DeckProgressRepository is the interface that wraps progress aggregates used by deck views
type DeckProgressRepository interface {
	// CountDueCards counts cards due for the user in at least one direction.
	CountDueCards(ctx context.Context, userID, deckID int, now time.Time) (int, error)
}

// DeckPartnershipRepository is the interface that wraps partnership lookups used by decks
type DeckPartnershipRepository interface {
	// GetActiveByUser retrieves the user's active partnership, if any.
	GetActiveByUser(ctx context.Context, userID int) (models.Partnership, error)
}

// deckService implements deck management and the deck permission model:
// the owner always has access, and the partner does when the deck is
// shared with their active partnership
type deckService struct {
	deckRepo        DeckRepository
	cardRepo        DeckCardRepository
	progressRepo    DeckProgressRepository
	partnershipRepo DeckPartnershipRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewDeckService creates a new deck service
func NewDeckService(
	deckRepo DeckRepository,
	cardRepo DeckCardRepository,
	progressRepo DeckProgressRepository,
	partnershipRepo DeckPartnershipRepository,
	logger *zap.Logger,
) *deckService {
	return &deckService{
		deckRepo:        deckRepo,
		cardRepo:        cardRepo,
		progressRepo:    progressRepo,
		partnershipRepo: partnershipRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// CanViewDeck reports whether the user may view (and study) the deck.
// Returns ErrNotFound for unknown decks.
func (s *deckService) CanViewDeck(ctx context.Context, userID, deckID int) (bool, error) {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return false, err
	}

	if deck.UserID == userID {
		return true, nil
	}

	return s.sharedWithUser(ctx, userID, deckID)
}

// CanEditDeck reports whether the user may modify the deck or its cards.
// Partners may edit shared decks; progress stays per-user regardless.
func (s *deckService) CanEditDeck(ctx context.Context, userID, deckID int) (bool, error) {
	return s.CanViewDeck(ctx, userID, deckID)
}

// sharedWithUser checks whether the deck is shared with the user's active
// partnership
func (s *deckService) sharedWithUser(ctx context.Context, userID, deckID int) (bool, error) {
	partnership, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check partnership: %w", err)
	}

	linked, err := s.deckRepo.IsLinked(ctx, deckID, partnership.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check deck sharing: %w", err)
	}

	return linked, nil
}

// ListDecks returns the user's own decks followed by decks the partner
// shared with them
func (s *deckService) ListDecks(ctx context.Context, userID int) ([]models.Deck, error) {
	decks, err := s.deckRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list decks", zap.Error(err))
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	partnership, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return decks, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check partnership: %w", err)
	}

	shared, err := s.deckRepo.GetByPartnership(ctx, partnership.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared decks: %w", err)
	}
	for _, deck := range shared {
		if deck.UserID != userID {
			decks = append(decks, deck)
		}
	}

	return decks, nil
}

// GetDeck returns the deck with its cards and the user's due count
func (s *deckService) GetDeck(ctx context.Context, userID, deckID int) (models.DeckDetail, error) {
	canView, err := s.CanViewDeck(ctx, userID, deckID)
	if err != nil {
		return models.DeckDetail{}, err
	}
	if !canView {
		return models.DeckDetail{}, fmt.Errorf("user %d cannot view deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return models.DeckDetail{}, err
	}

	cards, err := s.cardRepo.GetByDeck(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to load deck cards", zap.Error(err))
		return models.DeckDetail{}, fmt.Errorf("failed to load deck cards: %w", err)
	}
	if cards == nil {
		cards = []models.Card{}
	}

	dueCount, err := s.progressRepo.CountDueCards(ctx, userID, deckID, s.now())
	if err != nil {
		s.logger.Error("failed to count due cards", zap.Error(err))
		return models.DeckDetail{}, fmt.Errorf("failed to count due cards: %w", err)
	}

	return models.DeckDetail{
		Deck:     deck,
		Cards:    cards,
		DueCount: dueCount,
	}, nil
}

// CreateDeck creates a deck for the user, optionally sharing it with
// their active partnership
func (s *deckService) CreateDeck(ctx context.Context, userID int, title, description string, shared bool) (models.Deck, error) {
	now := s.now()
	deck := models.Deck{
		UserID:      userID,
		CreatedBy:   userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var partnershipID int
	if shared {
		partnership, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
		if errors.Is(err, models.ErrNotFound) {
			return models.Deck{}, fmt.Errorf("cannot share a deck: %w", models.ErrNoPartnership)
		}
		if err != nil {
			return models.Deck{}, fmt.Errorf("failed to check partnership: %w", err)
		}
		partnershipID = partnership.ID
	}

	deckID, err := s.deckRepo.Create(ctx, deck)
	if err != nil {
		s.logger.Error("failed to create deck", zap.Error(err))
		return models.Deck{}, fmt.Errorf("failed to create deck: %w", err)
	}
	deck.ID = deckID

	if shared {
		if err := s.deckRepo.LinkToPartnership(ctx, deckID, partnershipID); err != nil {
			s.logger.Error("failed to share deck", zap.Error(err))
			return models.Deck{}, fmt.Errorf("failed to share deck: %w", err)
		}
		deck.Shared = true
	}

	return deck, nil
}

// UpdateDeck overwrites the deck's title and description
func (s *deckService) UpdateDeck(ctx context.Context, userID, deckID int, title, description string) (models.Deck, error) {
	canEdit, err := s.CanEditDeck(ctx, userID, deckID)
	if err != nil {
		return models.Deck{}, err
	}
	if !canEdit {
		return models.Deck{}, fmt.Errorf("user %d cannot edit deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return models.Deck{}, err
	}

	deck.Title = title
	deck.Description = description
	deck.UpdatedAt = s.now()

	if err := s.deckRepo.Update(ctx, deck); err != nil {
		s.logger.Error("failed to update deck", zap.Error(err))
		return models.Deck{}, fmt.Errorf("failed to update deck: %w", err)
	}

	return deck, nil
}

// DeleteDeck removes the deck with everything under it. Only the owner
// may delete, shared or not.
func (s *deckService) DeleteDeck(ctx context.Context, userID, deckID int) error {
	deck, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.UserID != userID {
		return fmt.Errorf("user %d cannot delete deck %d: %w", userID, deckID, models.ErrForbidden)
	}

	if err := s.deckRepo.Delete(ctx, deckID); err != nil {
		s.logger.Error("failed to delete deck", zap.Error(err))
		return fmt.Errorf("failed to delete deck: %w", err)
	}

	return nil
}
