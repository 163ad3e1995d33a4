package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined, InvitationExpired:
		return true
	}
	return false
}

// Invitation is a single-use, email-targeted offer of project membership.
// Only the SHA-256 fingerprint of the opaque token is stored; the raw token
// is revealed once at issue time. Acceptance is an atomic claim on the
// pending status, so exactly one redeemer wins a race.
type Invitation struct {
	ID        string
	ProjectID string
	Email     string
	Role      Role
	Message   string
	InvitedBy string
	TokenHash string
	Status    InvitationStatus
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invitation's TTL has lapsed at the given
// instant. Expiry is evaluated lazily (at accept/decline/list time); there is
// no timer that fires per invitation.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
