package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// mockDeckRepository is a mock implementation of DeckRepository
type mockDeckRepository struct {
	decks         map[int]models.Deck
	byUser        []models.Deck
	byPartnership []models.Deck
	linked        bool
	nextID        int
	created       []models.Deck
	updated       []models.Deck
	deletedIDs    []int
	links         [][2]int
	err           error
}

func newMockDeckRepository(decks ...models.Deck) *mockDeckRepository {
	m := &mockDeckRepository{decks: map[int]models.Deck{}, nextID: 50}
	for _, deck := range decks {
		m.decks[deck.ID] = deck
	}
	return m
}

func (m *mockDeckRepository) GetByID(ctx context.Context, deckID int) (models.Deck, error) {
	if m.err != nil {
		return models.Deck{}, m.err
	}
	deck, ok := m.decks[deckID]
	if !ok {
		return models.Deck{}, fmt.Errorf("deck %d: %w", deckID, models.ErrNotFound)
	}
	return deck, nil
}

func (m *mockDeckRepository) GetByUser(ctx context.Context, userID int) ([]models.Deck, error) {
	return m.byUser, m.err
}

func (m *mockDeckRepository) GetByPartnership(ctx context.Context, partnershipID int) ([]models.Deck, error) {
	return m.byPartnership, m.err
}

func (m *mockDeckRepository) IsLinked(ctx context.Context, deckID, partnershipID int) (bool, error) {
	return m.linked, m.err
}

func (m *mockDeckRepository) Create(ctx context.Context, deck models.Deck) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	deck.ID = m.nextID
	m.nextID++
	m.created = append(m.created, deck)
	m.decks[deck.ID] = deck
	return deck.ID, nil
}

func (m *mockDeckRepository) Update(ctx context.Context, deck models.Deck) error {
	m.updated = append(m.updated, deck)
	return m.err
}

func (m *mockDeckRepository) Delete(ctx context.Context, deckID int) error {
	m.deletedIDs = append(m.deletedIDs, deckID)
	return m.err
}

func (m *mockDeckRepository) LinkToPartnership(ctx context.Context, deckID, partnershipID int) error {
	m.links = append(m.links, [2]int{deckID, partnershipID})
	return m.err
}

func (m *mockDeckRepository) UnlinkPartnership(ctx context.Context, partnershipID int) error {
	return m.err
}

// mockDeckProgressRepository is a mock implementation of DeckProgressRepository
type mockDeckProgressRepository struct {
	dueCount int
	err      error
}

func (m *mockDeckProgressRepository) CountDueCards(ctx context.Context, userID, deckID int, now time.Time) (int, error) {
	return m.dueCount, m.err
}

// mockActivePartnership is a mock implementation of DeckPartnershipRepository
type mockActivePartnership struct {
	partnership models.Partnership
	err         error
}

func (m *mockActivePartnership) GetActiveByUser(ctx context.Context, userID int) (models.Partnership, error) {
	return m.partnership, m.err
}

func noPartnership() *mockActivePartnership {
	return &mockActivePartnership{err: fmt.Errorf("no active partnership: %w", models.ErrNotFound)}
}

func newTestDeckService(
	deckRepo *mockDeckRepository,
	cardRepo *mockStudyCardRepository,
	progressRepo *mockDeckProgressRepository,
	partnershipRepo *mockActivePartnership,
) *deckService {
	svc := NewDeckService(deckRepo, cardRepo, progressRepo, partnershipRepo, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func ownDeck() models.Deck {
	return models.Deck{ID: 3, UserID: 1, CreatedBy: 1, Title: "Serbian basics"}
}

func TestDeckService_CanViewDeck(t *testing.T) {
	tests := []struct {
		name            string
		userID          int
		partnershipRepo *mockActivePartnership
		linked          bool
		expected        bool
	}{
		{
			name:            "owner",
			userID:          1,
			partnershipRepo: noPartnership(),
			expected:        true,
		},
		{
			name:            "partner with the deck shared",
			userID:          2,
			partnershipRepo: &mockActivePartnership{partnership: models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}},
			linked:          true,
			expected:        true,
		},
		{
			name:            "partner without the deck shared",
			userID:          2,
			partnershipRepo: &mockActivePartnership{partnership: models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}},
			linked:          false,
			expected:        false,
		},
		{
			name:            "stranger with no partnership",
			userID:          9,
			partnershipRepo: noPartnership(),
			expected:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deckRepo := newMockDeckRepository(ownDeck())
			deckRepo.linked = tt.linked

			svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, tt.partnershipRepo)

			canView, err := svc.CanViewDeck(context.Background(), tt.userID, 3)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, canView)
		})
	}
}

func TestDeckService_CanViewDeck_UnknownDeck(t *testing.T) {
	svc := newTestDeckService(newMockDeckRepository(), &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	_, err := svc.CanViewDeck(context.Background(), 1, 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeckService_ListDecks(t *testing.T) {
	own := ownDeck()

	deckRepo := newMockDeckRepository(own)
	deckRepo.byUser = []models.Deck{own}
	deckRepo.byPartnership = []models.Deck{
		own,
		{ID: 4, UserID: 2, Title: "German verbs", Shared: true},
	}

	partnershipRepo := &mockActivePartnership{partnership: models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}}

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, partnershipRepo)

	decks, err := svc.ListDecks(context.Background(), 1)

	require.NoError(t, err)
	// Own decks once, plus the partner's shared deck.
	require.Len(t, decks, 2)
	assert.Equal(t, 3, decks[0].ID)
	assert.Equal(t, 4, decks[1].ID)
}

func TestDeckService_ListDecks_NoPartnership(t *testing.T) {
	deckRepo := newMockDeckRepository()
	deckRepo.byUser = []models.Deck{ownDeck()}

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	decks, err := svc.ListDecks(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, decks, 1)
}

func TestDeckService_GetDeck(t *testing.T) {
	deckRepo := newMockDeckRepository(ownDeck())
	cardRepo := &mockStudyCardRepository{cards: testDeckCards()}
	progressRepo := &mockDeckProgressRepository{dueCount: 1}

	svc := newTestDeckService(deckRepo, cardRepo, progressRepo, noPartnership())

	detail, err := svc.GetDeck(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, 3, detail.ID)
	assert.Len(t, detail.Cards, 2)
	assert.Equal(t, 1, detail.DueCount)
}

func TestDeckService_GetDeck_Forbidden(t *testing.T) {
	svc := newTestDeckService(newMockDeckRepository(ownDeck()), &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	_, err := svc.GetDeck(context.Background(), 9, 3)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestDeckService_CreateDeck(t *testing.T) {
	deckRepo := newMockDeckRepository()

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	deck, err := svc.CreateDeck(context.Background(), 1, "Serbian basics", "everyday words", false)

	require.NoError(t, err)
	assert.Equal(t, 50, deck.ID)
	assert.Equal(t, 1, deck.UserID)
	assert.Equal(t, 1, deck.CreatedBy)
	assert.False(t, deck.Shared)
	assert.Equal(t, testNow, deck.CreatedAt)
	assert.Empty(t, deckRepo.links)
}

func TestDeckService_CreateDeck_Shared(t *testing.T) {
	deckRepo := newMockDeckRepository()
	partnershipRepo := &mockActivePartnership{partnership: models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}}

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, partnershipRepo)

	deck, err := svc.CreateDeck(context.Background(), 1, "Serbian basics", "", true)

	require.NoError(t, err)
	assert.True(t, deck.Shared)
	require.Len(t, deckRepo.links, 1)
	assert.Equal(t, [2]int{50, 5}, deckRepo.links[0])
}

func TestDeckService_CreateDeck_SharedWithoutPartnership(t *testing.T) {
	deckRepo := newMockDeckRepository()

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	_, err := svc.CreateDeck(context.Background(), 1, "Serbian basics", "", true)

	assert.ErrorIs(t, err, models.ErrNoPartnership)
	// Nothing is created on rejection.
	assert.Empty(t, deckRepo.created)
}

func TestDeckService_UpdateDeck(t *testing.T) {
	deckRepo := newMockDeckRepository(ownDeck())

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	deck, err := svc.UpdateDeck(context.Background(), 1, 3, "Serbian A2", "next level")

	require.NoError(t, err)
	assert.Equal(t, "Serbian A2", deck.Title)
	assert.Equal(t, "next level", deck.Description)
	assert.Equal(t, testNow, deck.UpdatedAt)
	require.Len(t, deckRepo.updated, 1)
}

func TestDeckService_DeleteDeck(t *testing.T) {
	deckRepo := newMockDeckRepository(ownDeck())

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	err := svc.DeleteDeck(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, []int{3}, deckRepo.deletedIDs)
}

func TestDeckService_DeleteDeck_PartnerCannotDelete(t *testing.T) {
	deckRepo := newMockDeckRepository(ownDeck())
	deckRepo.linked = true
	partnershipRepo := &mockActivePartnership{partnership: models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true}}

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, partnershipRepo)

	// The partner can view and edit a shared deck but never delete it.
	err := svc.DeleteDeck(context.Background(), 2, 3)

	assert.ErrorIs(t, err, models.ErrForbidden)
	assert.Empty(t, deckRepo.deletedIDs)
}

func TestDeckService_ListDecks_RepositoryError(t *testing.T) {
	deckRepo := newMockDeckRepository()
	deckRepo.err = errors.New("connection lost")

	svc := newTestDeckService(deckRepo, &mockStudyCardRepository{}, &mockDeckProgressRepository{}, noPartnership())

	_, err := svc.ListDecks(context.Background(), 1)

	assert.Error(t, err)
}
