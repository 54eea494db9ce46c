package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// mockCardRepository is a mock implementation of CardRepository
type mockCardRepository struct {
	cards      map[int]models.Card
	byDeck     []models.Card
	nextID     int
	created    []models.Card
	updated    []models.Card
	deletedIDs []int
	err        error
}

func newMockCardRepository(cards ...models.Card) *mockCardRepository {
	m := &mockCardRepository{cards: map[int]models.Card{}, nextID: 70}
	for _, card := range cards {
		m.cards[card.ID] = card
	}
	return m
}

func (m *mockCardRepository) GetByID(ctx context.Context, cardID int) (models.Card, error) {
	if m.err != nil {
		return models.Card{}, m.err
	}
	card, ok := m.cards[cardID]
	if !ok {
		return models.Card{}, fmt.Errorf("card %d: %w", cardID, models.ErrNotFound)
	}
	return card, nil
}

func (m *mockCardRepository) GetByDeck(ctx context.Context, deckID int) ([]models.Card, error) {
	return m.byDeck, m.err
}

func (m *mockCardRepository) Create(ctx context.Context, card models.Card) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	card.ID = m.nextID
	m.nextID++
	m.created = append(m.created, card)
	return card.ID, nil
}

func (m *mockCardRepository) Update(ctx context.Context, card models.Card) error {
	m.updated = append(m.updated, card)
	return m.err
}

func (m *mockCardRepository) Delete(ctx context.Context, cardID int) error {
	m.deletedIDs = append(m.deletedIDs, cardID)
	return m.err
}

// mockDeckPermissions is a mock implementation of CardDeckPermissions
type mockDeckPermissions struct {
	canView bool
	canEdit bool
	err     error
}

func (m *mockDeckPermissions) CanViewDeck(ctx context.Context, userID, deckID int) (bool, error) {
	return m.canView, m.err
}

func (m *mockDeckPermissions) CanEditDeck(ctx context.Context, userID, deckID int) (bool, error) {
	return m.canEdit, m.err
}

func newTestCardService(cardRepo *mockCardRepository, permissions *mockDeckPermissions) *cardService {
	svc := NewCardService(cardRepo, permissions, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCardService_ListCards(t *testing.T) {
	cardRepo := newMockCardRepository()
	cardRepo.byDeck = testDeckCards()

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canView: true})

	cards, err := svc.ListCards(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestCardService_ListCards_EmptyDeck(t *testing.T) {
	svc := newTestCardService(newMockCardRepository(), &mockDeckPermissions{canView: true})

	cards, err := svc.ListCards(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestCardService_ListCards_Forbidden(t *testing.T) {
	svc := newTestCardService(newMockCardRepository(), &mockDeckPermissions{canView: false})

	_, err := svc.ListCards(context.Background(), 1, 3)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestCardService_CreateCard(t *testing.T) {
	cardRepo := newMockCardRepository()

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canEdit: true})

	card, err := svc.CreateCard(context.Background(), 1, models.Card{
		DeckID:    3,
		ContentA:  "kuća",
		ContentB:  "Haus",
		LanguageA: "sr",
		LanguageB: "de",
		Context:   "Moja kuća je mala.",
	})

	require.NoError(t, err)
	assert.Equal(t, 70, card.ID)
	assert.Equal(t, testNow, card.CreatedAt)
	require.Len(t, cardRepo.created, 1)
	assert.Equal(t, "kuća", cardRepo.created[0].ContentA)
}

func TestCardService_CreateCard_Forbidden(t *testing.T) {
	cardRepo := newMockCardRepository()

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canEdit: false})

	_, err := svc.CreateCard(context.Background(), 1, models.Card{DeckID: 3})

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, cardRepo.created)
}

func TestCardService_UpdateCard(t *testing.T) {
	existing := models.Card{ID: 7, DeckID: 3, ContentA: "kuća", ContentB: "Hause", LanguageA: "sr", LanguageB: "de"}
	cardRepo := newMockCardRepository(existing)

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canEdit: true})

	card, err := svc.UpdateCard(context.Background(), 1, models.Card{
		ID:        7,
		DeckID:    99,
		ContentA:  "kuća",
		ContentB:  "Haus",
		LanguageA: "sr",
		LanguageB: "de",
	})

	require.NoError(t, err)
	assert.Equal(t, "Haus", card.ContentB)
	// The deck a card belongs to is not client-writable.
	assert.Equal(t, 3, card.DeckID)
	require.Len(t, cardRepo.updated, 1)
}

func TestCardService_UpdateCard_UnknownCard(t *testing.T) {
	svc := newTestCardService(newMockCardRepository(), &mockDeckPermissions{canEdit: true})

	_, err := svc.UpdateCard(context.Background(), 1, models.Card{ID: 99})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCardService_DeleteCard(t *testing.T) {
	cardRepo := newMockCardRepository(models.Card{ID: 7, DeckID: 3})

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canEdit: true})

	err := svc.DeleteCard(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, []int{7}, cardRepo.deletedIDs)
}

func TestCardService_DeleteCard_Forbidden(t *testing.T) {
	cardRepo := newMockCardRepository(models.Card{ID: 7, DeckID: 3})

	svc := newTestCardService(cardRepo, &mockDeckPermissions{canEdit: false})

	err := svc.DeleteCard(context.Background(), 9, 7)

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, cardRepo.deletedIDs)
}
