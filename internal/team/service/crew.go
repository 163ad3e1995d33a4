package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/idx"
	"github.com/gridline/crewhub/pkg/slogx"
)

// CrewService manages work crews: sub-groupings of active project members
// under a designated lead. The lead is tracked on the crew record and never
// duplicated as a membership row.
type CrewService struct {
	Store store.Store
}

// CreateCrew creates an active crew in a project. The lead must already hold
// an active team membership there.
func (s *CrewService) CreateCrew(
	ctx context.Context,
	projectID string,
	leadID string,
	name string,
	crewType domain.CrewType,
	description string,
	actorID string,
) (domain.Crew, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || leadID == "" || name == "" || actorID == "" {
		return domain.Crew{}, ErrInvalidRequest
	}
	if !crewType.Valid() {
		log.Warn("crew creation with unknown type",
			slog.String("crew_type", string(crewType)),
		)
		return domain.Crew{}, ErrInvalidRequest
	}

	// 2. Project must exist and accept mutations.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Crew{}, ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return domain.Crew{}, err
	}
	if project.Archived {
		return domain.Crew{}, ErrInvalidTransition
	}

	// 3. Actor must be an active member permitted to create crews.
	if err := s.requireActive(ctx, projectID, actorID, domain.ActionCreateCrew); err != nil {
		return domain.Crew{}, err
	}

	// 4. Lead must be an active member of the project.
	lead, err := s.Store.Memberships().GetMembership(ctx, projectID, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Crew{}, ErrConflict
		}
		log.Error("failed to fetch lead membership", slog.Any("error", err))
		return domain.Crew{}, err
	}
	if lead.Status != domain.MembershipActive {
		return domain.Crew{}, ErrConflict
	}

	// 5. Insert.
	now := time.Now().UTC()
	crew := domain.Crew{
		ID:          idx.New().String(),
		ProjectID:   projectID,
		LeadID:      leadID,
		Name:        name,
		Type:        crewType,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Crews().CreateCrew(ctx, crew); err != nil {
		log.Error("failed to create crew", slog.Any("error", err))
		return domain.Crew{}, err
	}

	log.Info("crew created",
		slog.String("crew_id", crew.ID),
		slog.String("project_id", projectID),
		slog.String("lead_id", leadID),
		slog.String("crew_type", string(crewType)),
		slog.String("actor_id", actorID),
	)
	return crew, nil
}

// DeactivateCrew soft-deactivates a crew. Member rows keep their history;
// deactivating an already-inactive crew succeeds without effect.
func (s *CrewService) DeactivateCrew(ctx context.Context, crewID, actorID string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if crewID == "" || actorID == "" {
		return ErrInvalidRequest
	}

	// 2. Crew must exist.
	crew, err := s.Store.Crews().GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch crew", slog.Any("error", err))
		return err
	}

	// 3. Actor must be an active member permitted to manage crews.
	if err := s.requireActive(ctx, crew.ProjectID, actorID, domain.ActionCreateCrew); err != nil {
		return err
	}

	// 4. Flip the flag.
	if !crew.Active {
		return nil
	}
	if err := s.Store.Crews().SetCrewActive(ctx, crewID, false); err != nil {
		log.Error("failed to deactivate crew", slog.Any("error", err))
		return err
	}

	log.Info("crew deactivated",
		slog.String("crew_id", crewID),
		slog.String("project_id", crew.ProjectID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// AddMember assigns an active project member to a crew. The crew lead never
// appears as a membership row, and a user holds at most one active row per
// crew; the partial unique index backs the concurrent double-add.
func (s *CrewService) AddMember(
	ctx context.Context,
	crewID string,
	targetUserID string,
	role domain.CrewRole,
	actorID string,
) (domain.CrewMembership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if crewID == "" || targetUserID == "" || actorID == "" {
		return domain.CrewMembership{}, ErrInvalidRequest
	}
	if !role.Valid() {
		return domain.CrewMembership{}, ErrInvalidRequest
	}

	// 2. Crew must exist and be active.
	crew, err := s.Store.Crews().GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CrewMembership{}, ErrNotFound
		}
		log.Error("failed to fetch crew", slog.Any("error", err))
		return domain.CrewMembership{}, err
	}
	if !crew.Active {
		return domain.CrewMembership{}, ErrInvalidTransition
	}

	// 3. Actor must be an active member permitted to manage crew members.
	if err := s.requireActive(ctx, crew.ProjectID, actorID, domain.ActionManageCrewMembers); err != nil {
		return domain.CrewMembership{}, err
	}

	// 4. The lead is tracked on the crew record, never as a member row.
	if targetUserID == crew.LeadID {
		return domain.CrewMembership{}, ErrConflict
	}

	// 5. Target must hold an active team membership in the crew's project.
	target, err := s.Store.Memberships().GetMembership(ctx, crew.ProjectID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CrewMembership{}, ErrNotFound
		}
		log.Error("failed to fetch target membership", slog.Any("error", err))
		return domain.CrewMembership{}, err
	}
	if target.Status != domain.MembershipActive {
		return domain.CrewMembership{}, ErrConflict
	}

	// 6. Reject a second active stint on the same crew.
	if _, err := s.Store.CrewMemberships().GetActiveCrewMembership(ctx, crewID, targetUserID); err == nil {
		return domain.CrewMembership{}, ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check crew membership", slog.Any("error", err))
		return domain.CrewMembership{}, err
	}

	// 7. Insert. A concurrent add loses on the partial unique index.
	now := time.Now().UTC()
	m := domain.CrewMembership{
		ID:        idx.New().String(),
		CrewID:    crewID,
		UserID:    targetUserID,
		Role:      role,
		StartDate: now,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.CrewMemberships().CreateCrewMembership(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.CrewMembership{}, ErrConflict
		}
		log.Error("failed to create crew membership", slog.Any("error", err))
		return domain.CrewMembership{}, err
	}

	log.Info("crew member added",
		slog.String("crew_id", crewID),
		slog.String("target_user_id", targetUserID),
		slog.String("crew_role", string(role)),
		slog.String("actor_id", actorID),
	)
	return m, nil
}

// RemoveMember ends a member's active stint on a crew: the row keeps its
// history with end_date stamped and active cleared.
func (s *CrewService) RemoveMember(
	ctx context.Context,
	crewID string,
	targetUserID string,
	actorID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if crewID == "" || targetUserID == "" || actorID == "" {
		return ErrInvalidRequest
	}

	// 2. Crew must exist.
	crew, err := s.Store.Crews().GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch crew", slog.Any("error", err))
		return err
	}

	// 3. Actor must be an active member permitted to manage crew members.
	if err := s.requireActive(ctx, crew.ProjectID, actorID, domain.ActionManageCrewMembers); err != nil {
		return err
	}

	// 4. An active stint must exist.
	m, err := s.Store.CrewMemberships().GetActiveCrewMembership(ctx, crewID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch crew membership", slog.Any("error", err))
		return err
	}

	// 5. End it.
	if err := s.Store.CrewMemberships().EndCrewMembership(ctx, m.ID, time.Now().UTC()); err != nil {
		log.Error("failed to end crew membership", slog.Any("error", err))
		return err
	}

	log.Info("crew member removed",
		slog.String("crew_id", crewID),
		slog.String("target_user_id", targetUserID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// AvailableCandidates lists active project members eligible to join the crew:
// everyone active in the project minus current active crew members and the
// crew lead. Pure read.
func (s *CrewService) AvailableCandidates(ctx context.Context, crewID, actorID string) ([]domain.TeamMembership, error) {
	log := slogx.FromContext(ctx)

	if crewID == "" || actorID == "" {
		return nil, ErrInvalidRequest
	}

	crew, err := s.Store.Crews().GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to fetch crew", slog.Any("error", err))
		return nil, err
	}

	if err := s.requireActive(ctx, crew.ProjectID, actorID, domain.ActionManageCrewMembers); err != nil {
		return nil, err
	}

	team, err := s.Store.Memberships().ListTeam(ctx, crew.ProjectID)
	if err != nil {
		log.Error("failed to list team", slog.Any("error", err))
		return nil, err
	}
	members, err := s.Store.CrewMemberships().ListCrewMembers(ctx, crewID)
	if err != nil {
		log.Error("failed to list crew members", slog.Any("error", err))
		return nil, err
	}

	taken := make(map[string]struct{}, len(members)+1)
	taken[crew.LeadID] = struct{}{}
	for _, m := range members {
		if m.Active {
			taken[m.UserID] = struct{}{}
		}
	}

	candidates := make([]domain.TeamMembership, 0, len(team))
	for _, m := range team {
		if m.Status != domain.MembershipActive {
			continue
		}
		if _, ok := taken[m.UserID]; ok {
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates, nil
}

// ListCrewMembers returns every membership row of a crew, active first. Any
// member of the crew's project may list it.
func (s *CrewService) ListCrewMembers(ctx context.Context, crewID, actorID string) ([]domain.CrewMembership, error) {
	log := slogx.FromContext(ctx)

	if crewID == "" || actorID == "" {
		return nil, ErrInvalidRequest
	}

	crew, err := s.Store.Crews().GetCrew(ctx, crewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to fetch crew", slog.Any("error", err))
		return nil, err
	}

	if _, err := s.Store.Memberships().GetMembership(ctx, crew.ProjectID, actorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		log.Error("failed to fetch actor membership", slog.Any("error", err))
		return nil, err
	}

	members, err := s.Store.CrewMemberships().ListCrewMembers(ctx, crewID)
	if err != nil {
		log.Error("failed to list crew members", slog.Any("error", err))
		return nil, err
	}
	return members, nil
}

// ListCrews returns every crew of a project. Any member of the project may
// list them.
func (s *CrewService) ListCrews(ctx context.Context, projectID, actorID string) ([]domain.Crew, error) {
	log := slogx.FromContext(ctx)

	if projectID == "" || actorID == "" {
		return nil, ErrInvalidRequest
	}

	if _, err := s.Store.Projects().GetProject(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return nil, err
	}

	if _, err := s.Store.Memberships().GetMembership(ctx, projectID, actorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		log.Error("failed to fetch actor membership", slog.Any("error", err))
		return nil, err
	}

	crews, err := s.Store.Crews().ListCrews(ctx, projectID)
	if err != nil {
		log.Error("failed to list crews", slog.Any("error", err))
		return nil, err
	}
	return crews, nil
}

func (s *CrewService) requireActive(
	ctx context.Context,
	projectID string,
	actorID string,
	action domain.Action,
) error {
	log := slogx.FromContext(ctx)

	actor, err := s.Store.Memberships().GetMembership(ctx, projectID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrForbidden
		}
		log.Error("failed to fetch actor membership", slog.Any("error", err))
		return err
	}
	if actor.Status != domain.MembershipActive || !domain.Allowed(actor.Role, action) {
		log.Warn("operation denied",
			slog.String("project_id", projectID),
			slog.String("actor_id", actorID),
			slog.String("action", string(action)),
			slog.String("actor_role", string(actor.Role)),
		)
		return ErrForbidden
	}
	return nil
}
