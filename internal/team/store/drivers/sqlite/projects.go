package sqlite

import (
	"context"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
)

type projectsRepo struct {
	q querier
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, company_id, number, name, description, status, archived, created_at, updated_at
		FROM projects
		WHERE id = ?`, id)

	var p domain.Project
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Number, &p.Name, &p.Description,
		&p.Status, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO projects (id, company_id, number, name, description, status, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.CompanyID, p.Number, p.Name, p.Description,
		p.Status, p.Archived, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *projectsRepo) SetProjectArchived(ctx context.Context, projectID string, archived bool) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE projects SET archived = ?, updated_at = ?
		WHERE id = ?`,
		archived, time.Now().UTC(), projectID,
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
