package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/badoux/checkmail"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/idx"
	"github.com/gridline/crewhub/pkg/slogx"
)

// ProjectService creates and reads projects. Creation establishes the
// founding owner membership in the same transaction, so the "exactly one
// owner" invariant holds from the first row onward.
type ProjectService struct {
	Store store.Store
}

// CreateProject inserts a project together with its founding owner
// membership, both active immediately.
func (s *ProjectService) CreateProject(
	ctx context.Context,
	companyID string,
	number string,
	name string,
	description string,
	status domain.ProjectStatus,
	founderID string,
	founderEmail string,
) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if companyID == "" || name == "" || founderID == "" || founderEmail == "" {
		return domain.Project{}, ErrInvalidRequest
	}
	if err := checkmail.ValidateFormat(founderEmail); err != nil {
		return domain.Project{}, ErrInvalidRequest
	}
	if status == "" {
		status = domain.ProjectPlanning
	}
	if !status.Valid() {
		return domain.Project{}, ErrInvalidRequest
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:          idx.New().String(),
		CompanyID:   companyID,
		Number:      number,
		Name:        name,
		Description: description,
		Status:      status,
		Archived:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	acceptedAt := now
	owner := domain.TeamMembership{
		ID:         idx.New().String(),
		ProjectID:  project.ID,
		UserID:     founderID,
		Email:      founderEmail,
		Role:       domain.RoleOwner,
		Status:     domain.MembershipActive,
		InvitedBy:  founderID,
		InvitedAt:  now,
		AcceptedAt: &acceptedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 2. Insert both atomically.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, project); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, owner)
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Project{}, ErrConflict
		}
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created",
		slog.String("project_id", project.ID),
		slog.String("company_id", companyID),
		slog.String("owner_id", founderID),
	)
	return project, nil
}

// GetProject returns a project by id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	if projectID == "" {
		return domain.Project{}, ErrInvalidRequest
	}

	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrNotFound
		}
		return domain.Project{}, err
	}
	return project, nil
}
