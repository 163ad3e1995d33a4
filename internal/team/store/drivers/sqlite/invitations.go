package sqlite

import (
	"context"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
)

type invitationsRepo struct {
	q querier
}

const invitationColumns = `
	id, project_id, email, role, message, invited_by,
	token_hash, status, expires_at, created_at, updated_at`

func (r *invitationsRepo) GetInvitationByTokenHash(
	ctx context.Context,
	hash string,
) (domain.Invitation, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+invitationColumns+`
		FROM invitations
		WHERE token_hash = ?`, hash)

	var inv domain.Invitation
	err := row.Scan(
		&inv.ID, &inv.ProjectID, &inv.Email, &inv.Role, &inv.Message, &inv.InvitedBy,
		&inv.TokenHash, &inv.Status, &inv.ExpiresAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO invitations
			(id, project_id, email, role, message, invited_by, token_hash, status, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.ProjectID, inv.Email, inv.Role, inv.Message, inv.InvitedBy,
		inv.TokenHash, inv.Status, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) SupersedePendingInvitation(
	ctx context.Context,
	projectID, email string,
) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE project_id = ? AND email = ? AND status = ?`,
		domain.InvitationExpired, time.Now().UTC(),
		projectID, email, domain.InvitationPending,
	)
	return err
}

// ClaimInvitation is the compare-and-swap that makes acceptance single-use:
// the UPDATE matches only while the row still holds the from status, so of N
// concurrent claimants exactly one sees an affected row.
func (r *invitationsRepo) ClaimInvitation(
	ctx context.Context,
	invitationID string,
	from, to domain.InvitationStatus,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		to, time.Now().UTC(), invitationID, from,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) MarkExpiredInvitations(
	ctx context.Context,
	now time.Time,
) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE invitations
		SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at < ?`,
		domain.InvitationExpired, now.UTC(), domain.InvitationPending, now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitationsRepo) DeleteStaleInvitations(ctx context.Context, cutoff time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		DELETE FROM invitations
		WHERE status != ? AND updated_at < ?`,
		domain.InvitationPending, cutoff.UTC(),
	)
	return err
}
