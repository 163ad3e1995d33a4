package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
)

type membershipsRepo struct {
	q querier
}

const membershipColumns = `
	id, project_id, user_id, email, role, status,
	invited_by, invited_at, accepted_at, archived_from, created_at, updated_at`

func (r *membershipsRepo) GetMembership(
	ctx context.Context,
	projectID, userID string,
) (domain.TeamMembership, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+membershipColumns+`
		FROM team_memberships
		WHERE project_id = ? AND user_id = ?`, projectID, userID)
	return scanMembership(row)
}

func (r *membershipsRepo) GetMembershipByEmail(
	ctx context.Context,
	projectID, email string,
) (domain.TeamMembership, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+membershipColumns+`
		FROM team_memberships
		WHERE project_id = ? AND email = ?`, projectID, email)
	return scanMembership(row)
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.TeamMembership) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO team_memberships
			(id, project_id, user_id, email, role, status, invited_by, invited_at, accepted_at, archived_from, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProjectID, m.UserID, m.Email, m.Role, m.Status,
		m.InvitedBy, m.InvitedAt, mapOptionalTime(m.AcceptedAt),
		mapStatusNull(m.ArchivedFrom), m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) UpdateMembership(ctx context.Context, m domain.TeamMembership) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE team_memberships
		SET user_id = ?, email = ?, role = ?, status = ?, accepted_at = ?, archived_from = ?, updated_at = ?
		WHERE id = ?`,
		m.UserID, m.Email, m.Role, m.Status, mapOptionalTime(m.AcceptedAt),
		mapStatusNull(m.ArchivedFrom), time.Now().UTC(), m.ID,
	)
	if err != nil {
		return mapConstraint(err)
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

func (r *membershipsRepo) ListTeam(
	ctx context.Context,
	projectID string,
) ([]domain.TeamMembership, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+membershipColumns+`
		FROM team_memberships
		WHERE project_id = ?
		ORDER BY created_at ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMembership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) ArchiveProjectMemberships(
	ctx context.Context,
	projectID string,
) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE team_memberships
		SET archived_from = status, status = ?, updated_at = ?
		WHERE project_id = ? AND status IN (?, ?)`,
		domain.MembershipArchived, time.Now().UTC(),
		projectID, domain.MembershipActive, domain.MembershipInactive,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *membershipsRepo) RestoreProjectMemberships(
	ctx context.Context,
	projectID string,
) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		UPDATE team_memberships
		SET status = archived_from, archived_from = NULL, updated_at = ?
		WHERE project_id = ? AND status = ? AND archived_from IS NOT NULL`,
		time.Now().UTC(), projectID, domain.MembershipArchived,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *membershipsRepo) CountOwners(ctx context.Context, projectID string) (int, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM team_memberships
		WHERE project_id = ? AND role = ?`, projectID, domain.RoleOwner)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(row scanner) (domain.TeamMembership, error) {
	var (
		m            domain.TeamMembership
		acceptedAt   sql.NullTime
		archivedFrom sql.NullString
	)
	err := row.Scan(
		&m.ID, &m.ProjectID, &m.UserID, &m.Email, &m.Role, &m.Status,
		&m.InvitedBy, &m.InvitedAt, &acceptedAt, &archivedFrom, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.TeamMembership{}, mapNotFound(err)
	}
	m.AcceptedAt = mapNullTimePtr(acceptedAt)
	if archivedFrom.Valid {
		m.ArchivedFrom = domain.MembershipStatus(archivedFrom.String)
	}
	return m, nil
}

func mapStatusNull(s domain.MembershipStatus) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: string(s), Valid: true}
}
