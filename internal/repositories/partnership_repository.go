package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

// partnershipRepository implements PartnershipRepository over the
// partnerships and partnership_invitations tables
type partnershipRepository struct {
	db *sql.DB
}

// NewPartnershipRepository creates a new partnership repository
func NewPartnershipRepository(db *sql.DB) *partnershipRepository {
	return &partnershipRepository{
		db: db,
	}
}

// GetActiveByUser retrieves the user's active partnership, if any
func (r *partnershipRepository) GetActiveByUser(ctx context.Context, userID int) (models.Partnership, error) {
	query := `
		SELECT id, user_a_id, user_b_id, is_active, created_at
		FROM partnerships
		WHERE (user_a_id = ? OR user_b_id = ?) AND is_active = 1
	`

	var p models.Partnership
	err := r.db.QueryRowContext(ctx, query, userID, userID).Scan(
		&p.ID, &p.UserAID, &p.UserBID, &p.IsActive, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Partnership{}, fmt.Errorf("no active partnership for user %d: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return models.Partnership{}, fmt.Errorf("failed to query partnership: %w", err)
	}

	return p, nil
}

// Create inserts a new active partnership and returns its ID
func (r *partnershipRepository) Create(ctx context.Context, p models.Partnership) (int, error) {
	query := `
		INSERT INTO partnerships (user_a_id, user_b_id, is_active, created_at)
		VALUES (?, ?, 1, ?)
	`

	result, err := r.db.ExecContext(ctx, query, p.UserAID, p.UserBID, p.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert partnership: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get partnership ID: %w", err)
	}

	return int(id), nil
}

// Deactivate marks a partnership dissolved
func (r *partnershipRepository) Deactivate(ctx context.Context, partnershipID int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE partnerships SET is_active = 0 WHERE id = ?`, partnershipID)
	if err != nil {
		return fmt.Errorf("failed to deactivate partnership: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("partnership %d: %w", partnershipID, models.ErrNotFound)
	}

	return nil
}

// CreateInvitation inserts a new invitation and returns its ID
func (r *partnershipRepository) CreateInvitation(ctx context.Context, inv models.PartnershipInvitation) (int, error) {
	query := `
		INSERT INTO partnership_invitations (inviter_id, code, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, inv.InviterID, inv.Code, inv.ExpiresAt, inv.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert invitation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get invitation ID: %w", err)
	}

	return int(id), nil
}

// GetInvitationByCode retrieves an invitation by its code
func (r *partnershipRepository) GetInvitationByCode(ctx context.Context, code string) (models.PartnershipInvitation, error) {
	query := `
		SELECT id, inviter_id, code, accepted_by, expires_at, created_at
		FROM partnership_invitations
		WHERE code = ?
	`

	var (
		inv        models.PartnershipInvitation
		acceptedBy sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&inv.ID, &inv.InviterID, &inv.Code, &acceptedBy, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.PartnershipInvitation{}, fmt.Errorf("invitation code: %w", models.ErrNotFound)
	}
	if err != nil {
		return models.PartnershipInvitation{}, fmt.Errorf("failed to query invitation: %w", err)
	}

	if acceptedBy.Valid {
		accepted := int(acceptedBy.Int64)
		inv.AcceptedBy = &accepted
	}

	return inv, nil
}

// MarkInvitationAccepted records who accepted the invitation. The guard on
// accepted_by makes double acceptance a conflict rather than a silent
// overwrite.
func (r *partnershipRepository) MarkInvitationAccepted(ctx context.Context, invitationID, userID int) error {
	query := `
		UPDATE partnership_invitations
		SET accepted_by = ?
		WHERE id = ? AND accepted_by IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, userID, invitationID)
	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check invitation update: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("invitation %d already accepted: %w", invitationID, models.ErrConflict)
	}

	return nil
}
