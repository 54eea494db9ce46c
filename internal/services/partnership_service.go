package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
	"go.uber.org/zap"
)

// invitationTTL is how long a partnership invitation stays acceptable.
const invitationTTL = 7 * 24 * time.Hour

// PartnershipRepository is the interface that wraps methods for Partnership table data access
type PartnershipRepository interface {
	// GetActiveByUser retrieves the user's active partnership, if any.
	GetActiveByUser(ctx context.Context, userID int) (models.Partnership, error)
	// Create inserts a new active partnership and returns its ID.
	Create(ctx context.Context, p models.Partnership) (int, error)
	// Deactivate marks a partnership dissolved.
	Deactivate(ctx context.Context, partnershipID int) error
	// CreateInvitation inserts a new invitation and returns its ID.
	CreateInvitation(ctx context.Context, inv models.PartnershipInvitation) (int, error)
	// GetInvitationByCode retrieves an invitation by its code.
	GetInvitationByCode(ctx context.Context, code string) (models.PartnershipInvitation, error)
	// MarkInvitationAccepted records who accepted the invitation; a
	// conflict if someone already did.
	MarkInvitationAccepted(ctx context.Context, invitationID, userID int) error
}

// PartnershipDeckRepository is the interface that wraps deck lookups used by partnerships
type PartnershipDeckRepository interface {
	// GetByPartnership retrieves the decks shared with a partnership.
	GetByPartnership(ctx context.Context, partnershipID int) ([]models.Deck, error)
	// UnlinkPartnership removes all deck links for a partnership.
	UnlinkPartnership(ctx context.Context, partnershipID int) error
}

// partnershipService implements the partnership lifecycle: invitation
// codes, acceptance, reporting and dissolution
type partnershipService struct {
	partnershipRepo PartnershipRepository
	deckRepo        PartnershipDeckRepository
	logger          *zap.Logger
	now             func() time.Time
}

// NewPartnershipService creates a new partnership service
func NewPartnershipService(partnershipRepo PartnershipRepository, deckRepo PartnershipDeckRepository, logger *zap.Logger) *partnershipService {
	return &partnershipService{
		partnershipRepo: partnershipRepo,
		deckRepo:        deckRepo,
		logger:          logger,
		now:             time.Now,
	}
}

// Invite creates an invitation code for the user. Users already in an
// active partnership cannot invite.
func (s *partnershipService) Invite(ctx context.Context, userID int) (models.PartnershipInvitation, error) {
	_, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
	if err == nil {
		return models.PartnershipInvitation{}, fmt.Errorf("user %d already has a partner: %w", userID, models.ErrConflict)
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.PartnershipInvitation{}, fmt.Errorf("failed to check partnership: %w", err)
	}

	now := s.now()
	inv := models.PartnershipInvitation{
		InviterID: userID,
		Code:      uuid.New().String(),
		ExpiresAt: now.Add(invitationTTL),
		CreatedAt: now,
	}

	id, err := s.partnershipRepo.CreateInvitation(ctx, inv)
	if err != nil {
		s.logger.Error("failed to create invitation", zap.Error(err))
		return models.PartnershipInvitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	inv.ID = id

	return inv, nil
}

// Accept redeems an invitation code and forms the partnership
func (s *partnershipService) Accept(ctx context.Context, userID int, code string) (models.Partnership, error) {
	inv, err := s.partnershipRepo.GetInvitationByCode(ctx, code)
	if err != nil {
		return models.Partnership{}, err
	}

	now := s.now()
	if !inv.IsValid(now) {
		return models.Partnership{}, fmt.Errorf("invitation expired or already used: %w", models.ErrConflict)
	}
	if inv.InviterID == userID {
		return models.Partnership{}, fmt.Errorf("cannot accept own invitation: %w", models.ErrConflict)
	}

	for _, memberID := range []int{userID, inv.InviterID} {
		_, err := s.partnershipRepo.GetActiveByUser(ctx, memberID)
		if err == nil {
			return models.Partnership{}, fmt.Errorf("user %d already has a partner: %w", memberID, models.ErrConflict)
		}
		if !errors.Is(err, models.ErrNotFound) {
			return models.Partnership{}, fmt.Errorf("failed to check partnership: %w", err)
		}
	}

	// Claim the invitation first; the accepted_by guard turns a double
	// accept into a conflict instead of two partnerships.
	if err := s.partnershipRepo.MarkInvitationAccepted(ctx, inv.ID, userID); err != nil {
		return models.Partnership{}, err
	}

	partnership := models.Partnership{
		UserAID:   inv.InviterID,
		UserBID:   userID,
		IsActive:  true,
		CreatedAt: now,
	}

	id, err := s.partnershipRepo.Create(ctx, partnership)
	if err != nil {
		s.logger.Error("failed to create partnership", zap.Error(err))
		return models.Partnership{}, fmt.Errorf("failed to create partnership: %w", err)
	}
	partnership.ID = id

	return partnership, nil
}

// Get reports the user's active partnership with its shared decks
func (s *partnershipService) Get(ctx context.Context, userID int) (models.PartnershipView, error) {
	partnership, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return models.PartnershipView{}, err
	}

	decks, err := s.deckRepo.GetByPartnership(ctx, partnership.ID)
	if err != nil {
		s.logger.Error("failed to load shared decks", zap.Error(err))
		return models.PartnershipView{}, fmt.Errorf("failed to load shared decks: %w", err)
	}
	if decks == nil {
		decks = []models.Deck{}
	}

	return models.PartnershipView{
		ID:            partnership.ID,
		PartnerUserID: partnership.PartnerOf(userID),
		SharedDecks:   decks,
	}, nil
}

// Dissolve deactivates the user's partnership and unlinks its shared
// decks. The decks themselves survive with their owners.
func (s *partnershipService) Dissolve(ctx context.Context, userID int) error {
	partnership, err := s.partnershipRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.partnershipRepo.Deactivate(ctx, partnership.ID); err != nil {
		s.logger.Error("failed to deactivate partnership", zap.Error(err))
		return fmt.Errorf("failed to deactivate partnership: %w", err)
	}

	if err := s.deckRepo.UnlinkPartnership(ctx, partnership.ID); err != nil {
		s.logger.Error("failed to unlink shared decks", zap.Error(err))
		return fmt.Errorf("failed to unlink shared decks: %w", err)
	}

	return nil
}
