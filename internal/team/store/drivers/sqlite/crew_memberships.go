package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
)

type crewMembershipsRepo struct {
	q querier
}

const crewMembershipColumns = `
	id, crew_id, user_id, role, start_date, end_date, active, created_at, updated_at`

func (r *crewMembershipsRepo) GetActiveCrewMembership(
	ctx context.Context,
	crewID, userID string,
) (domain.CrewMembership, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+crewMembershipColumns+`
		FROM crew_memberships
		WHERE crew_id = ? AND user_id = ? AND active = 1`, crewID, userID)
	return scanCrewMembership(row)
}

func (r *crewMembershipsRepo) CreateCrewMembership(
	ctx context.Context,
	m domain.CrewMembership,
) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO crew_memberships
			(id, crew_id, user_id, role, start_date, end_date, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.CrewID, m.UserID, m.Role, m.StartDate,
		mapOptionalTime(m.EndDate), m.Active, m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *crewMembershipsRepo) EndCrewMembership(
	ctx context.Context,
	membershipID string,
	endedAt time.Time,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE crew_memberships
		SET active = 0, end_date = ?, updated_at = ?
		WHERE id = ? AND active = 1`,
		endedAt.UTC(), time.Now().UTC(), membershipID,
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

func (r *crewMembershipsRepo) ListCrewMembers(
	ctx context.Context,
	crewID string,
) ([]domain.CrewMembership, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+crewMembershipColumns+`
		FROM crew_memberships
		WHERE crew_id = ?
		ORDER BY active DESC, created_at ASC`, crewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.CrewMembership
	for rows.Next() {
		m, err := scanCrewMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func scanCrewMembership(row scanner) (domain.CrewMembership, error) {
	var (
		m       domain.CrewMembership
		endDate sql.NullTime
	)
	err := row.Scan(
		&m.ID, &m.CrewID, &m.UserID, &m.Role, &m.StartDate,
		&endDate, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return domain.CrewMembership{}, mapNotFound(err)
	}
	m.EndDate = mapNullTimePtr(endDate)
	return m, nil
}
