package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/notify"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/slogx"
)

// MembershipService orchestrates the team membership lifecycle: inviting,
// role changes, soft removal and project archival. Every operation takes the
// acting user explicitly; there is no ambient current-user state.
type MembershipService struct {
	Store       store.Store
	Invitations *InvitationService
	Notifier    notify.Notifier
}

// Invite issues an invitation on behalf of the actor and kicks off the
// notification as a fire-and-forget side effect. The raw token is returned
// alongside the invitation; this is its only reveal.
func (s *MembershipService) Invite(
	ctx context.Context,
	projectID string,
	email string,
	role domain.Role,
	actorID string,
	message string,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	inv, token, err := s.Invitations.Issue(ctx, projectID, email, role, actorID, message)
	if err != nil {
		return domain.Invitation{}, "", err
	}

	if s.Notifier != nil {
		project, err := s.Store.Projects().GetProject(ctx, projectID)
		if err != nil {
			log.Error("failed to fetch project for notification", slog.Any("error", err))
			project.Name = projectID
		}

		notice := notify.Invitation{
			Email:       inv.Email,
			ProjectName: project.Name,
			Role:        string(inv.Role),
			Token:       token,
			Message:     inv.Message,
			ExpiresAt:   inv.ExpiresAt,
		}

		// Delivery failure is logged for audit but never fails the invite.
		go func(logger *slog.Logger) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			sendCtx = slogx.WithContext(sendCtx, logger)

			if err := s.Notifier.NotifyInvitation(sendCtx, notice); err != nil {
				logger.Error("failed to deliver invitation notification",
					slog.String("invitation_id", inv.ID),
					slog.Any("error", err),
				)
			}
		}(log)
	}

	return inv, token, nil
}

// AcceptInvitation redeems an invitation token for the acting user.
func (s *MembershipService) AcceptInvitation(
	ctx context.Context,
	token string,
	actorID string,
) (domain.TeamMembership, error) {
	return s.Invitations.Accept(ctx, token, actorID)
}

// DeclineInvitation declines an invitation token. Safe to call twice.
func (s *MembershipService) DeclineInvitation(ctx context.Context, token string) error {
	return s.Invitations.Decline(ctx, token)
}

// ChangeRole updates a member's role in place. Owner memberships are
// unreachable through this path in either direction: the target may not be
// the owner, and the new role may not be owner.
func (s *MembershipService) ChangeRole(
	ctx context.Context,
	projectID string,
	targetUserID string,
	newRole domain.Role,
	actorID string,
) (domain.TeamMembership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || targetUserID == "" || actorID == "" {
		return domain.TeamMembership{}, ErrInvalidRequest
	}
	if !newRole.Valid() {
		return domain.TeamMembership{}, ErrInvalidRequest
	}
	if newRole == domain.RoleOwner {
		// Ownership moves via an explicit transfer operation, never here.
		return domain.TeamMembership{}, ErrInvalidTransition
	}

	// 2. Project must exist and accept mutations.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TeamMembership{}, ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return domain.TeamMembership{}, err
	}
	if project.Archived {
		return domain.TeamMembership{}, ErrInvalidTransition
	}

	// 3. Actor must be an active member permitted to change roles.
	if err := s.requireActive(ctx, projectID, actorID, domain.ActionChangeRole); err != nil {
		return domain.TeamMembership{}, err
	}

	// 4. Target must exist and not be the owner.
	target, err := s.Store.Memberships().GetMembership(ctx, projectID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TeamMembership{}, ErrNotFound
		}
		log.Error("failed to fetch target membership", slog.Any("error", err))
		return domain.TeamMembership{}, err
	}
	if target.Role == domain.RoleOwner {
		log.Warn("attempted role change on owner membership",
			slog.String("project_id", projectID),
			slog.String("actor_id", actorID),
		)
		return domain.TeamMembership{}, ErrInvalidTransition
	}

	// 5. Update in place.
	target.Role = newRole
	if err := s.Store.Memberships().UpdateMembership(ctx, target); err != nil {
		log.Error("failed to update membership role", slog.Any("error", err))
		return domain.TeamMembership{}, err
	}

	log.Info("membership role changed",
		slog.String("project_id", projectID),
		slog.String("target_user_id", targetUserID),
		slog.String("new_role", string(newRole)),
		slog.String("actor_id", actorID),
	)
	return target, nil
}

// Remove soft-removes a member: status becomes inactive, the row and its crew
// history stay. Removing an already-inactive member succeeds without effect.
func (s *MembershipService) Remove(
	ctx context.Context,
	projectID string,
	targetUserID string,
	actorID string,
) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || targetUserID == "" || actorID == "" {
		return ErrInvalidRequest
	}

	// 2. Project must exist and accept mutations.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return err
	}
	if project.Archived {
		return ErrInvalidTransition
	}

	// 3. Actor must be an active member permitted to remove.
	if err := s.requireActive(ctx, projectID, actorID, domain.ActionRemoveMember); err != nil {
		return err
	}

	// 4. Target must exist and not be the owner.
	target, err := s.Store.Memberships().GetMembership(ctx, projectID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch target membership", slog.Any("error", err))
		return err
	}
	if target.Role == domain.RoleOwner {
		log.Warn("attempted removal of owner membership",
			slog.String("project_id", projectID),
			slog.String("actor_id", actorID),
		)
		return ErrInvalidTransition
	}

	// 5. Transition. Inactive targets are left alone so double-submits from a
	// client succeed quietly; archived rows belong to the archive cascade and
	// stay out of reach.
	switch target.Status {
	case domain.MembershipInactive:
		return nil
	case domain.MembershipArchived:
		return ErrInvalidTransition
	}
	target.Status = domain.MembershipInactive
	if err := s.Store.Memberships().UpdateMembership(ctx, target); err != nil {
		log.Error("failed to deactivate membership", slog.Any("error", err))
		return err
	}

	log.Info("membership removed",
		slog.String("project_id", projectID),
		slog.String("target_user_id", targetUserID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// ArchiveProject shelves a project: the archived flag is set and every active
// or inactive membership cascades to archived, each remembering the status it
// held so un-archival can restore it. The cascade and the flag flip are one
// transaction.
func (s *MembershipService) ArchiveProject(ctx context.Context, projectID, actorID string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || actorID == "" {
		return ErrInvalidRequest
	}

	// 2. Project must exist and not already be shelved.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return err
	}
	if project.Archived {
		return ErrInvalidTransition
	}

	// 3. Actor must be an active member permitted to archive.
	if err := s.requireActive(ctx, projectID, actorID, domain.ActionArchiveProject); err != nil {
		return err
	}

	// 4. Flip the flag and cascade atomically.
	var archived int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().SetProjectArchived(ctx, projectID, true); err != nil {
			return err
		}
		archived, err = tx.Memberships().ArchiveProjectMemberships(ctx, projectID)
		return err
	})
	if err != nil {
		log.Error("failed to archive project", slog.Any("error", err))
		return err
	}

	log.Info("project archived",
		slog.String("project_id", projectID),
		slog.String("actor_id", actorID),
		slog.Int64("memberships_archived", archived),
	)
	return nil
}

// UnarchiveProject reverses ArchiveProject: the flag clears and every
// archived membership returns to the status it held before the cascade. The
// permission check reads the actor's archived row, since nobody is active in
// a shelved project.
func (s *MembershipService) UnarchiveProject(ctx context.Context, projectID, actorID string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || actorID == "" {
		return ErrInvalidRequest
	}

	// 2. Project must exist and actually be shelved.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return err
	}
	if !project.Archived {
		return ErrInvalidTransition
	}

	// 3. The actor's membership is archived along with everything else; it
	// qualifies if the status it would restore to is active.
	actor, err := s.Store.Memberships().GetMembership(ctx, projectID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrForbidden
		}
		log.Error("failed to fetch actor membership", slog.Any("error", err))
		return err
	}
	restoresActive := actor.Status == domain.MembershipArchived && actor.ArchivedFrom == domain.MembershipActive
	if !restoresActive || !domain.Allowed(actor.Role, domain.ActionArchiveProject) {
		return ErrForbidden
	}

	// 4. Clear the flag and restore atomically.
	var restored int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().SetProjectArchived(ctx, projectID, false); err != nil {
			return err
		}
		restored, err = tx.Memberships().RestoreProjectMemberships(ctx, projectID)
		return err
	})
	if err != nil {
		log.Error("failed to unarchive project", slog.Any("error", err))
		return err
	}

	log.Info("project unarchived",
		slog.String("project_id", projectID),
		slog.String("actor_id", actorID),
		slog.Int64("memberships_restored", restored),
	)
	return nil
}

// ListTeam returns every membership row of a project, all statuses. Any
// member of the project may list it, whatever their status.
func (s *MembershipService) ListTeam(ctx context.Context, projectID, actorID string) ([]domain.TeamMembership, error) {
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

	team, err := s.Store.Memberships().ListTeam(ctx, projectID)
	if err != nil {
		log.Error("failed to list team", slog.Any("error", err))
		return nil, err
	}
	return team, nil
}

// GetRole returns the role a user holds in a project, or ErrNotFound when no
// membership row exists.
func (s *MembershipService) GetRole(ctx context.Context, projectID, userID string) (domain.Role, error) {
	if projectID == "" || userID == "" {
		return "", ErrInvalidRequest
	}

	m, err := s.Store.Memberships().GetMembership(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return m.Role, nil
}

// requireActive loads the actor's membership and checks both activity and the
// permission table. Absent or non-active actors are Forbidden, not NotFound,
// so probing cannot distinguish "not a member" from "not allowed".
func (s *MembershipService) requireActive(
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
