package sqlite

import (
	"context"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
)

type crewsRepo struct {
	q querier
}

const crewColumns = `
	id, project_id, lead_id, name, crew_type, description, active, created_at, updated_at`

func (r *crewsRepo) GetCrew(ctx context.Context, id string) (domain.Crew, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+crewColumns+`
		FROM crews
		WHERE id = ?`, id)

	var c domain.Crew
	err := row.Scan(
		&c.ID, &c.ProjectID, &c.LeadID, &c.Name, &c.Type,
		&c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Crew{}, mapNotFound(err)
	}
	return c, nil
}

func (r *crewsRepo) CreateCrew(ctx context.Context, c domain.Crew) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO crews
			(id, project_id, lead_id, name, crew_type, description, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ProjectID, c.LeadID, c.Name, c.Type,
		c.Description, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *crewsRepo) SetCrewActive(ctx context.Context, crewID string, active bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE crews SET active = ?, updated_at = ?
		WHERE id = ?`,
		active, time.Now().UTC(), crewID,
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

func (r *crewsRepo) ListCrews(ctx context.Context, projectID string) ([]domain.Crew, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+crewColumns+`
		FROM crews
		WHERE project_id = ?
		ORDER BY created_at ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crews []domain.Crew
	for rows.Next() {
		var c domain.Crew
		err := rows.Scan(
			&c.ID, &c.ProjectID, &c.LeadID, &c.Name, &c.Type,
			&c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}
