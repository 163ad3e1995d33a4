package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/pkg/cryptox"
	"github.com/gridline/crewhub/pkg/idx"
)

func TestHousekeepingSweep(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)

	now := time.Now().UTC()

	lapsed := domain.Invitation{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		Email:     "lapsed@example.com",
		Role:      domain.RoleWorker,
		InvitedBy: ownerID,
		TokenHash: cryptox.FingerprintToken(cryptox.MustGenerateToken(cryptox.TokenSize256)),
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now.Add(-8 * 24 * time.Hour),
		UpdatedAt: now.Add(-8 * 24 * time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, lapsed))

	ancient := domain.Invitation{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		Email:     "ancient@example.com",
		Role:      domain.RoleWorker,
		InvitedBy: ownerID,
		TokenHash: cryptox.FingerprintToken(cryptox.MustGenerateToken(cryptox.TokenSize256)),
		Status:    domain.InvitationDeclined,
		ExpiresAt: now.Add(-200 * 24 * time.Hour),
		CreatedAt: now.Add(-200 * 24 * time.Hour),
		UpdatedAt: now.Add(-200 * 24 * time.Hour),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, ancient))

	fresh := domain.Invitation{
		ID:        idx.New().String(),
		ProjectID: project.ID,
		Email:     "fresh@example.com",
		Role:      domain.RoleWorker,
		InvitedBy: ownerID,
		TokenHash: cryptox.FingerprintToken(cryptox.MustGenerateToken(cryptox.TokenSize256)),
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, fresh))

	svc := NewHousekeepingService(st.Invitations(), slog.Default(), time.Hour)
	svc.sweep()

	stamped, err := st.Invitations().GetInvitationByTokenHash(ctx, lapsed.TokenHash)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, stamped.Status)

	_, err = st.Invitations().GetInvitationByTokenHash(ctx, ancient.TokenHash)
	require.ErrorIs(t, err, store.ErrNotFound)

	kept, err := st.Invitations().GetInvitationByTokenHash(ctx, fresh.TokenHash)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, kept.Status)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)

	svc := NewHousekeepingService(st.Invitations(), slog.Default(), time.Hour)
	svc.Start()
	svc.Stop()
}
