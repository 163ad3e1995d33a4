package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/badoux/checkmail"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/cryptox"
	"github.com/gridline/crewhub/pkg/idx"
	"github.com/gridline/crewhub/pkg/slogx"
)

// DefaultInvitationTTL is how long an invitation token stays redeemable when
// no TTL is configured.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// InvitationService mints and redeems single-use invitation tokens. The raw
// token is revealed exactly once at issue time; only its SHA-256 fingerprint
// is persisted, so a database leak never yields redeemable tokens.
type InvitationService struct {
	Store store.Store
	TTL   time.Duration
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultInvitationTTL
	}
	return s.TTL
}

// Issue creates a new invitation for an email address to join a project at a
// given role, superseding any prior pending invitation for the same address.
// It returns the stored invitation together with the raw token.
func (s *InvitationService) Issue(
	ctx context.Context,
	projectID string,
	email string,
	role domain.Role,
	issuedBy string,
	message string,
) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if projectID == "" || email == "" || issuedBy == "" {
		log.Warn("invitation issue missing required fields")
		return domain.Invitation{}, "", ErrInvalidRequest
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		log.Warn("invitation issue with malformed email",
			slog.String("project_id", projectID),
		)
		return domain.Invitation{}, "", ErrInvalidRequest
	}
	if !role.Valid() {
		log.Warn("invitation issue with unknown role",
			slog.String("role", string(role)),
		)
		return domain.Invitation{}, "", ErrInvalidRequest
	}

	// 2. A project has exactly one owner, established at creation. Inviting a
	// second one is a lifecycle violation, not a permission problem.
	if role == domain.RoleOwner {
		log.Warn("attempted to invite a second owner",
			slog.String("project_id", projectID),
			slog.String("issued_by", issuedBy),
		)
		return domain.Invitation{}, "", ErrInvalidTransition
	}

	// 3. Project must exist and accept mutations.
	project, err := s.Store.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", ErrNotFound
		}
		log.Error("failed to fetch project", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if project.Archived {
		return domain.Invitation{}, "", ErrInvalidTransition
	}

	// 4. Issuer must be an active member with invite permission.
	issuer, err := s.Store.Memberships().GetMembership(ctx, projectID, issuedBy)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", ErrForbidden
		}
		log.Error("failed to fetch issuer membership", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}
	if issuer.Status != domain.MembershipActive || !domain.Allowed(issuer.Role, domain.ActionInviteMember) {
		log.Warn("invitation issue denied",
			slog.String("project_id", projectID),
			slog.String("issued_by", issuedBy),
			slog.String("issuer_role", string(issuer.Role)),
		)
		return domain.Invitation{}, "", ErrForbidden
	}

	// 5. An address already holding an active membership cannot be invited.
	existing, err := s.Store.Memberships().GetMembershipByEmail(ctx, projectID, email)
	if err == nil && existing.Status == domain.MembershipActive {
		return domain.Invitation{}, "", ErrConflict
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check existing membership", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	// 6. Generate the opaque token and fingerprint it.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", err
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		ProjectID: projectID,
		Email:     email,
		Role:      role,
		Message:   message,
		InvitedBy: issuedBy,
		TokenHash: cryptox.FingerprintToken(token),
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 7. Supersede any pending invitation for the same address and insert the
	// new one atomically, so the partial unique index never trips on re-issue.
	// A re-invited former member's row flips back to pending until they
	// accept; their role only changes at acceptance.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().SupersedePendingInvitation(ctx, projectID, email); err != nil {
			return err
		}
		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			return err
		}
		if existing.ID != "" && existing.Status == domain.MembershipInactive {
			existing.Status = domain.MembershipPending
			existing.InvitedBy = issuedBy
			existing.InvitedAt = now
			if err := tx.Memberships().UpdateMembership(ctx, existing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Concurrent issue for the same address won the insert.
			return domain.Invitation{}, "", ErrConflict
		}
		log.Error("failed to store invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", projectID),
		slog.String("role", string(role)),
		slog.String("issued_by", issuedBy),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	// 8. Return the raw token (not the fingerprint).
	return inv, token, nil
}

// Accept redeems an invitation token for the acting user, creating or
// reactivating their team membership at the invited role. Exactly one
// acceptance ever succeeds per token: the pending status is claimed with a
// conditional update, and a lost claim surfaces as ErrAlreadyUsed.
func (s *InvitationService) Accept(
	ctx context.Context,
	token string,
	userID string,
) (domain.TeamMembership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if token == "" || userID == "" {
		log.Warn("invitation acceptance missing required fields")
		return domain.TeamMembership{}, ErrInvalidRequest
	}

	// 2. Fingerprint the token and look the invitation up.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation acceptance with unknown token")
			return domain.TeamMembership{}, ErrNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.TeamMembership{}, err
	}

	// 3. Lazy expiry: a pending invitation past its TTL is expired the moment
	// anyone touches it. The stamp is best-effort; the answer is Expired even
	// if a concurrent toucher stamped it first.
	now := time.Now().UTC()
	if inv.Status == domain.InvitationPending && inv.Expired(now) {
		if err := s.Store.Invitations().ClaimInvitation(ctx, inv.ID, domain.InvitationPending, domain.InvitationExpired); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to stamp expired invitation", slog.Any("error", err))
		}
		return domain.TeamMembership{}, ErrExpired
	}

	// 4. Terminal statuses.
	switch inv.Status {
	case domain.InvitationPending:
	case domain.InvitationExpired:
		return domain.TeamMembership{}, ErrExpired
	default:
		log.Warn("invitation acceptance on spent token",
			slog.String("invitation_id", inv.ID),
			slog.String("status", string(inv.Status)),
		)
		return domain.TeamMembership{}, ErrAlreadyUsed
	}

	// 5. Archived projects accept no new members.
	project, err := s.Store.Projects().GetProject(ctx, inv.ProjectID)
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

	// 6. Claim the invitation and upsert the membership atomically.
	var membership domain.TeamMembership
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Invitations().ClaimInvitation(ctx, inv.ID, domain.InvitationPending, domain.InvitationAccepted)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Lost the race: a concurrent redeemer claimed it first.
				return ErrAlreadyUsed
			}
			return err
		}

		membership, err = s.upsertMembership(ctx, tx, inv, userID, now)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyUsed) || errors.Is(err, ErrConflict) {
			return domain.TeamMembership{}, err
		}
		log.Error("failed to redeem invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.TeamMembership{}, err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", inv.ProjectID),
		slog.String("user_id", userID),
		slog.String("role", string(inv.Role)),
	)

	return membership, nil
}

// upsertMembership creates the redeemer's membership row or reactivates the
// one they held before removal, always at the invitation's role. Runs inside
// the acceptance transaction.
func (s *InvitationService) upsertMembership(
	ctx context.Context,
	tx store.Tx,
	inv domain.Invitation,
	userID string,
	now time.Time,
) (domain.TeamMembership, error) {
	// Prefer the row keyed by user id; fall back to the invited email so a
	// member removed under an old account email still reactivates in place.
	m, err := tx.Memberships().GetMembership(ctx, inv.ProjectID, userID)
	if errors.Is(err, store.ErrNotFound) {
		m, err = tx.Memberships().GetMembershipByEmail(ctx, inv.ProjectID, inv.Email)
	}
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return domain.TeamMembership{}, err
		}

		acceptedAt := now
		m = domain.TeamMembership{
			ID:         idx.New().String(),
			ProjectID:  inv.ProjectID,
			UserID:     userID,
			Email:      inv.Email,
			Role:       inv.Role,
			Status:     domain.MembershipActive,
			InvitedBy:  inv.InvitedBy,
			InvitedAt:  inv.CreatedAt,
			AcceptedAt: &acceptedAt,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := tx.Memberships().CreateMembership(ctx, m); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return domain.TeamMembership{}, ErrConflict
			}
			return domain.TeamMembership{}, err
		}
		return m, nil
	}

	if m.Status == domain.MembershipActive {
		return domain.TeamMembership{}, ErrConflict
	}
	if m.Status == domain.MembershipArchived {
		// Rows stay archived while their project is shelved; acceptance was
		// already refused for archived projects, so this row belongs to a
		// cascade that never got restored.
		return domain.TeamMembership{}, ErrInvalidTransition
	}

	acceptedAt := now
	m.UserID = userID
	m.Email = inv.Email
	m.Role = inv.Role
	m.Status = domain.MembershipActive
	m.InvitedBy = inv.InvitedBy
	m.InvitedAt = inv.CreatedAt
	m.AcceptedAt = &acceptedAt
	m.ArchivedFrom = ""
	if err := tx.Memberships().UpdateMembership(ctx, m); err != nil {
		return domain.TeamMembership{}, err
	}
	return m, nil
}

// Decline marks a pending invitation as declined. Declining an invitation
// that already lapsed or was already declined is a no-op success; declining
// an accepted one reports ErrAlreadyUsed.
func (s *InvitationService) Decline(ctx context.Context, token string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if token == "" {
		return ErrInvalidRequest
	}

	// 2. Look the invitation up by fingerprint.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	// 3. A pending invitation past its TTL lapses quietly.
	now := time.Now().UTC()
	if inv.Status == domain.InvitationPending && inv.Expired(now) {
		if err := s.Store.Invitations().ClaimInvitation(ctx, inv.ID, domain.InvitationPending, domain.InvitationExpired); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to stamp expired invitation", slog.Any("error", err))
		}
		return nil
	}

	// 4. Terminal statuses.
	switch inv.Status {
	case domain.InvitationPending:
	case domain.InvitationDeclined, domain.InvitationExpired:
		return nil
	default:
		return ErrAlreadyUsed
	}

	// 5. Claim pending -> declined. A lost claim means a concurrent
	// transition; re-read to report it faithfully.
	err = s.Store.Invitations().ClaimInvitation(ctx, inv.ID, domain.InvitationPending, domain.InvitationDeclined)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to decline invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
			return err
		}
		inv, err = s.Store.Invitations().GetInvitationByTokenHash(ctx, inv.TokenHash)
		if err != nil {
			return err
		}
		if inv.Status == domain.InvitationAccepted {
			return ErrAlreadyUsed
		}
		return nil
	}

	log.Info("invitation declined",
		slog.String("invitation_id", inv.ID),
		slog.String("project_id", inv.ProjectID),
	)
	return nil
}
