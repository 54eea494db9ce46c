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

// mockPartnershipRepository is a stateful mock implementation of PartnershipRepository
type mockPartnershipRepository struct {
	active         map[int]models.Partnership
	invitations    map[string]models.PartnershipInvitation
	nextID         int
	created        []models.Partnership
	deactivatedIDs []int
	acceptErr      error
}

func newMockPartnershipRepository() *mockPartnershipRepository {
	return &mockPartnershipRepository{
		active:      map[int]models.Partnership{},
		invitations: map[string]models.PartnershipInvitation{},
		nextID:      5,
	}
}

func (m *mockPartnershipRepository) addActive(p models.Partnership) {
	m.active[p.UserAID] = p
	m.active[p.UserBID] = p
}

func (m *mockPartnershipRepository) GetActiveByUser(ctx context.Context, userID int) (models.Partnership, error) {
	p, ok := m.active[userID]
	if !ok {
		return models.Partnership{}, fmt.Errorf("no active partnership: %w", models.ErrNotFound)
	}
	return p, nil
}

func (m *mockPartnershipRepository) Create(ctx context.Context, p models.Partnership) (int, error) {
	p.ID = m.nextID
	m.nextID++
	m.created = append(m.created, p)
	m.addActive(p)
	return p.ID, nil
}

func (m *mockPartnershipRepository) Deactivate(ctx context.Context, partnershipID int) error {
	m.deactivatedIDs = append(m.deactivatedIDs, partnershipID)
	for userID, p := range m.active {
		if p.ID == partnershipID {
			delete(m.active, userID)
		}
	}
	return nil
}

func (m *mockPartnershipRepository) CreateInvitation(ctx context.Context, inv models.PartnershipInvitation) (int, error) {
	inv.ID = m.nextID
	m.nextID++
	m.invitations[inv.Code] = inv
	return inv.ID, nil
}

func (m *mockPartnershipRepository) GetInvitationByCode(ctx context.Context, code string) (models.PartnershipInvitation, error) {
	inv, ok := m.invitations[code]
	if !ok {
		return models.PartnershipInvitation{}, fmt.Errorf("invitation: %w", models.ErrNotFound)
	}
	return inv, nil
}

func (m *mockPartnershipRepository) MarkInvitationAccepted(ctx context.Context, invitationID, userID int) error {
	if m.acceptErr != nil {
		return m.acceptErr
	}
	for code, inv := range m.invitations {
		if inv.ID == invitationID {
			inv.AcceptedBy = &userID
			m.invitations[code] = inv
		}
	}
	return nil
}

// mockSharedDeckRepository is a mock implementation of PartnershipDeckRepository
type mockSharedDeckRepository struct {
	decks       []models.Deck
	unlinkedIDs []int
	err         error
}

func (m *mockSharedDeckRepository) GetByPartnership(ctx context.Context, partnershipID int) ([]models.Deck, error) {
	return m.decks, m.err
}

func (m *mockSharedDeckRepository) UnlinkPartnership(ctx context.Context, partnershipID int) error {
	m.unlinkedIDs = append(m.unlinkedIDs, partnershipID)
	return m.err
}

func newTestPartnershipService(repo *mockPartnershipRepository, deckRepo *mockSharedDeckRepository) *partnershipService {
	svc := NewPartnershipService(repo, deckRepo, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func validInvitation(inviterID int) models.PartnershipInvitation {
	return models.PartnershipInvitation{
		ID:        30,
		InviterID: inviterID,
		Code:      "invite-code",
		ExpiresAt: testNow.Add(24 * time.Hour),
		CreatedAt: testNow.Add(-time.Hour),
	}
}

func TestPartnershipService_Invite(t *testing.T) {
	repo := newMockPartnershipRepository()

	svc := newTestPartnershipService(repo, &mockSharedDeckRepository{})

	inv, err := svc.Invite(context.Background(), 1)

	require.NoError(t, err)
	assert.NotEmpty(t, inv.Code)
	assert.Equal(t, 1, inv.InviterID)
	assert.Equal(t, testNow.Add(invitationTTL), inv.ExpiresAt)
	assert.Contains(t, repo.invitations, inv.Code)
}

func TestPartnershipService_Invite_AlreadyPartnered(t *testing.T) {
	repo := newMockPartnershipRepository()
	repo.addActive(models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true})

	svc := newTestPartnershipService(repo, &mockSharedDeckRepository{})

	_, err := svc.Invite(context.Background(), 1)

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestPartnershipService_Accept(t *testing.T) {
	repo := newMockPartnershipRepository()
	repo.invitations["invite-code"] = validInvitation(1)

	svc := newTestPartnershipService(repo, &mockSharedDeckRepository{})

	partnership, err := svc.Accept(context.Background(), 2, "invite-code")

	require.NoError(t, err)
	assert.Equal(t, 1, partnership.UserAID)
	assert.Equal(t, 2, partnership.UserBID)
	assert.True(t, partnership.IsActive)
	require.NotNil(t, repo.invitations["invite-code"].AcceptedBy)
	assert.Equal(t, 2, *repo.invitations["invite-code"].AcceptedBy)
}

func TestPartnershipService_Accept_Errors(t *testing.T) {
	accepted := 3

	tests := []struct {
		name          string
		setup         func(*mockPartnershipRepository)
		userID        int
		code          string
		expectedError error
	}{
		{
			name:          "unknown code",
			setup:         func(r *mockPartnershipRepository) {},
			userID:        2,
			code:          "missing",
			expectedError: models.ErrNotFound,
		},
		{
			name: "expired invitation",
			setup: func(r *mockPartnershipRepository) {
				inv := validInvitation(1)
				inv.ExpiresAt = testNow.Add(-time.Minute)
				r.invitations[inv.Code] = inv
			},
			userID:        2,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
		{
			name: "already accepted by someone else",
			setup: func(r *mockPartnershipRepository) {
				inv := validInvitation(1)
				inv.AcceptedBy = &accepted
				r.invitations[inv.Code] = inv
			},
			userID:        2,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
		{
			name: "own invitation",
			setup: func(r *mockPartnershipRepository) {
				r.invitations["invite-code"] = validInvitation(1)
			},
			userID:        1,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
		{
			name: "acceptor already partnered",
			setup: func(r *mockPartnershipRepository) {
				r.invitations["invite-code"] = validInvitation(1)
				r.addActive(models.Partnership{ID: 5, UserAID: 2, UserBID: 4, IsActive: true})
			},
			userID:        2,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
		{
			name: "inviter partnered since inviting",
			setup: func(r *mockPartnershipRepository) {
				r.invitations["invite-code"] = validInvitation(1)
				r.addActive(models.Partnership{ID: 5, UserAID: 1, UserBID: 4, IsActive: true})
			},
			userID:        2,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
		{
			name: "lost the claim race",
			setup: func(r *mockPartnershipRepository) {
				r.invitations["invite-code"] = validInvitation(1)
				r.acceptErr = fmt.Errorf("invitation taken: %w", models.ErrConflict)
			},
			userID:        2,
			code:          "invite-code",
			expectedError: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockPartnershipRepository()
			tt.setup(repo)

			svc := newTestPartnershipService(repo, &mockSharedDeckRepository{})

			_, err := svc.Accept(context.Background(), tt.userID, tt.code)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Empty(t, repo.created)
		})
	}
}

func TestPartnershipService_Get(t *testing.T) {
	repo := newMockPartnershipRepository()
	repo.addActive(models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true})
	deckRepo := &mockSharedDeckRepository{decks: []models.Deck{{ID: 3, UserID: 1, Title: "Serbian basics", Shared: true}}}

	svc := newTestPartnershipService(repo, deckRepo)

	view, err := svc.Get(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 5, view.ID)
	assert.Equal(t, 1, view.PartnerUserID)
	assert.Len(t, view.SharedDecks, 1)
}

func TestPartnershipService_Get_NoPartnership(t *testing.T) {
	svc := newTestPartnershipService(newMockPartnershipRepository(), &mockSharedDeckRepository{})

	_, err := svc.Get(context.Background(), 1)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPartnershipService_Dissolve(t *testing.T) {
	repo := newMockPartnershipRepository()
	repo.addActive(models.Partnership{ID: 5, UserAID: 1, UserBID: 2, IsActive: true})
	deckRepo := &mockSharedDeckRepository{}

	svc := newTestPartnershipService(repo, deckRepo)

	err := svc.Dissolve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []int{5}, repo.deactivatedIDs)
	// Shared decks are unlinked, not deleted.
	assert.Equal(t, []int{5}, deckRepo.unlinkedIDs)
}

func TestPartnershipService_Dissolve_NoPartnership(t *testing.T) {
	svc := newTestPartnershipService(newMockPartnershipRepository(), &mockSharedDeckRepository{})

	err := svc.Dissolve(context.Background(), 1)

	assert.ErrorIs(t, err, models.ErrNotFound)
}
