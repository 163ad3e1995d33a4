// Package notify is the outbound notification port. Delivery is fire-and-
// forget: a failed send is logged and never rolls back the membership
// mutation that triggered it.
package notify

import (
	"context"
	"time"

	"github.com/gridline/crewhub/pkg/slogx"
)

// Invitation carries everything a notifier needs to tell someone they have
// been invited to a project. Token is the raw single-use token; it appears
// nowhere else after issue time.
type Invitation struct {
	Email       string
	ProjectName string
	Role        string
	Token       string
	Message     string
	ExpiresAt   time.Time
}

// Notifier delivers invitation notices. Implementations must be safe for
// concurrent use.
type Notifier interface {
	NotifyInvitation(ctx context.Context, inv Invitation) error
}

// LogNotifier is the fallback used when no SMTP transport is configured. It
// records that a notification would have been sent, without the token, so
// dev environments get an audit trail instead of silence.
type LogNotifier struct{}

func (LogNotifier) NotifyInvitation(ctx context.Context, inv Invitation) error {
	slogx.FromContext(ctx).Info("invitation notification (no mail transport configured)",
		"email", inv.Email,
		"project", inv.ProjectName,
		"role", inv.Role,
		"expires_at", inv.ExpiresAt,
	)
	return nil
}
