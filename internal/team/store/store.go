package store

import (
	"context"
	"errors"
	"time"

	"github.com/gridline/crewhub/internal/team/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop callers from accidentally starting
// transactions within transactions.
type Store interface {
	Projects() Projects
	Memberships() Memberships
	Invitations() Invitations
	Crews() Crews
	CrewMemberships() CrewMemberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., claiming an
	// invitation and upserting the membership).
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Projects interface {
	// GetProject returns a project by id.
	GetProject(ctx context.Context, id string) (domain.Project, error)

	// CreateProject inserts a new project (id is provided by app via ULID).
	CreateProject(ctx context.Context, p domain.Project) error

	// SetProjectArchived flips the archived flag and bumps updated_at.
	SetProjectArchived(ctx context.Context, projectID string, archived bool) error
}

type Memberships interface {
	// GetMembership returns the membership row for a (project, user) pair.
	GetMembership(ctx context.Context, projectID, userID string) (domain.TeamMembership, error)

	// GetMembershipByEmail returns the membership row matching an invited
	// email within a project, regardless of status.
	GetMembershipByEmail(ctx context.Context, projectID, email string) (domain.TeamMembership, error)

	// CreateMembership inserts a new membership row. Returns ErrAlreadyExists
	// if the (project, user) pair already has one.
	CreateMembership(ctx context.Context, m domain.TeamMembership) error

	// UpdateMembership mutates role, status, email and accepted_at in place
	// and bumps updated_at. The row is addressed by id.
	UpdateMembership(ctx context.Context, m domain.TeamMembership) error

	// ListTeam returns every membership row for a project, all statuses,
	// ordered by creation.
	ListTeam(ctx context.Context, projectID string) ([]domain.TeamMembership, error)

	// ArchiveProjectMemberships cascades active and inactive memberships of a
	// project to the archived status, remembering the status each row held.
	// Returns the number of rows archived.
	ArchiveProjectMemberships(ctx context.Context, projectID string) (int64, error)

	// RestoreProjectMemberships reverses the archive cascade, returning each
	// archived row to the status it held before. Returns the number of rows
	// restored.
	RestoreProjectMemberships(ctx context.Context, projectID string) (int64, error)

	// CountOwners returns how many memberships hold the owner role in the
	// project, any status.
	CountOwners(ctx context.Context, projectID string) (int, error)
}

type Invitations interface {
	// GetInvitationByTokenHash returns an invitation by the fingerprint of its
	// opaque token, regardless of status.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token). Returns ErrAlreadyExists when a
	// pending invitation for the same (project, email) already exists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// SupersedePendingInvitation marks any pending invitation for the
	// (project, email) pair as expired so a fresh one can be issued.
	SupersedePendingInvitation(ctx context.Context, projectID, email string) error

	// ClaimInvitation conditionally transitions an invitation from one status
	// to another. The update only succeeds if the current status still equals
	// from; ErrNotFound signals the claim was lost (already transitioned).
	ClaimInvitation(ctx context.Context, invitationID string, from, to domain.InvitationStatus) error

	// MarkExpiredInvitations stamps pending invitations past their expiry as
	// expired. Returns the number of rows stamped. Housekeeping only; expiry
	// correctness never depends on it.
	MarkExpiredInvitations(ctx context.Context, now time.Time) (int64, error)

	// DeleteStaleInvitations purges terminal invitations older than cutoff.
	DeleteStaleInvitations(ctx context.Context, cutoff time.Time) error
}

type Crews interface {
	// GetCrew returns a crew by id.
	GetCrew(ctx context.Context, id string) (domain.Crew, error)

	// CreateCrew inserts a new crew (id is ULID).
	CreateCrew(ctx context.Context, c domain.Crew) error

	// SetCrewActive flips the active flag and bumps updated_at.
	SetCrewActive(ctx context.Context, crewID string, active bool) error

	// ListCrews returns all crews of a project ordered by creation.
	ListCrews(ctx context.Context, projectID string) ([]domain.Crew, error)
}

type CrewMemberships interface {
	// GetActiveCrewMembership returns the single active membership row for a
	// (crew, user) pair, or ErrNotFound.
	GetActiveCrewMembership(ctx context.Context, crewID, userID string) (domain.CrewMembership, error)

	// CreateCrewMembership inserts a new active membership row. The partial
	// unique index on (crew_id, user_id) WHERE active makes a concurrent
	// double-add surface as ErrAlreadyExists.
	CreateCrewMembership(ctx context.Context, m domain.CrewMembership) error

	// EndCrewMembership clears active and stamps end_date on the row.
	EndCrewMembership(ctx context.Context, membershipID string, endedAt time.Time) error

	// ListCrewMembers returns every membership row of a crew, active first.
	ListCrewMembers(ctx context.Context, crewID string) ([]domain.CrewMembership, error)
}
