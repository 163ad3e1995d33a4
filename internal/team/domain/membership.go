package domain

import "time"

// MembershipStatus is the lifecycle state of a team membership.
//
//	pending --accept--> active --remove--> inactive --re-invite+accept--> active
//	active|inactive --project archive--> archived
//
// Archived is terminal until the owning project is un-archived, after which
// the normal re-invite path reactivates the row.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
	MembershipArchived MembershipStatus = "archived"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipInactive, MembershipArchived:
		return true
	}
	return false
}

// TeamMembership binds a user to a project with a role and status. At most
// one row exists per (project, user); removal and archival are status
// transitions, never deletions, so audit history and crew records stay
// consistent.
type TeamMembership struct {
	ID         string
	ProjectID  string
	UserID     string
	Email      string
	Role       Role
	Status     MembershipStatus
	InvitedBy  string
	InvitedAt  time.Time
	AcceptedAt *time.Time
	// ArchivedFrom remembers the status a project archive cascaded this row
	// out of, so un-archival can restore it. Empty unless Status is archived.
	ArchivedFrom MembershipStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
