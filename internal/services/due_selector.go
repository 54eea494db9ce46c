package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// dueCardSelector resolves a study request into a direction-resolved list
// of presentable cards
type dueCardSelector struct {
	progressRepo ProgressRepository
	cardRepo     StudyCardRepository
	rng          *rand.Rand
}

// newDueCardSelector creates a new due card selector
func newDueCardSelector(progressRepo ProgressRepository, cardRepo StudyCardRepository, rng *rand.Rand) *dueCardSelector {
	return &dueCardSelector{
		progressRepo: progressRepo,
		cardRepo:     cardRepo,
		rng:          rng,
	}
}

// Select returns up to limit due cards for the user, deck and direction
// choice. Zero due cards is a normal state and yields an empty, non-nil
// slice.
func (s *dueCardSelector) Select(ctx context.Context, userID, deckID int, choice models.DirectionChoice, now time.Time, limit int) ([]models.PresentableCard, error) {
	if choice == models.ChoiceRandom {
		return s.selectRandom(ctx, userID, deckID, now, limit)
	}
	return s.selectFixed(ctx, userID, deckID, models.Direction(choice), now, limit)
}

// selectFixed serves the single-direction case from the due query
func (s *dueCardSelector) selectFixed(ctx context.Context, userID, deckID int, direction models.Direction, now time.Time, limit int) ([]models.PresentableCard, error) {
	records, err := s.progressRepo.FindDue(ctx, userID, deckID, direction, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find due records: %w", err)
	}

	cardIDs := make([]int, len(records))
	for i, record := range records {
		cardIDs[i] = record.CardID
	}

	cards, err := s.cardRepo.GetByIDs(ctx, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve due cards: %w", err)
	}

	cardsByID := make(map[int]models.Card, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	presentable := make([]models.PresentableCard, 0, len(records))
	for _, record := range records {
		card, ok := cardsByID[record.CardID]
		if !ok {
			// Card deleted between the due query and the lookup.
			continue
		}
		presentable = append(presentable, card.Present(direction))
	}

	return presentable, nil
}

// selectRandom draws an independent uniform direction per card, consulting
// that direction's progress record for dueness. A card with no record in
// the drawn direction is due now. Over many sessions the draw advances
// both per-card schedules, decaying toward balanced bidirectional mastery.
func (s *dueCardSelector) selectRandom(ctx context.Context, userID, deckID int, now time.Time, limit int) ([]models.PresentableCard, error) {
	cards, err := s.cardRepo.GetByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deck cards: %w", err)
	}

	records, err := s.progressRepo.GetByUserAndDeck(ctx, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress records: %w", err)
	}

	type progressKey struct {
		cardID    int
		direction models.Direction
	}
	recordsByKey := make(map[progressKey]models.CardProgress, len(records))
	for _, record := range records {
		recordsByKey[progressKey{record.CardID, record.Direction}] = record
	}

	shuffled := make([]models.Card, len(cards))
	copy(shuffled, cards)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	presentable := make([]models.PresentableCard, 0, limit)
	for _, card := range shuffled {
		if len(presentable) >= limit {
			break
		}

		direction := models.DirectionAToB
		if s.rng.Intn(2) == 1 {
			direction = models.DirectionBToA
		}

		record, ok := recordsByKey[progressKey{card.ID, direction}]
		if ok && !record.IsDue(now) {
			continue
		}

		presentable = append(presentable, card.Present(direction))
	}

	return presentable, nil
}
