package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/pkg/idx"
)

func TestCreateProjectEstablishesOwner(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}

	founderID := idx.New().String()
	project, err := svc.CreateProject(ctx, "company-1", "P-200", "Harbour Crossing", "stage 2", domain.ProjectPlanning, founderID, "founder@example.com")
	require.NoError(t, err)
	require.False(t, project.Archived)
	require.Equal(t, domain.ProjectPlanning, project.Status)

	owner, err := st.Memberships().GetMembership(ctx, project.ID, founderID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleOwner, owner.Role)
	require.Equal(t, domain.MembershipActive, owner.Status)
	require.NotNil(t, owner.AcceptedAt)

	count, err := st.Memberships().CountOwners(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestCreateProjectValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, "", "P-1", "X", "", domain.ProjectActive, "u", "a@example.com")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("malformed founder email", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, "c", "P-1", "X", "", domain.ProjectActive, "u", "not-an-email")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, "c", "P-1", "X", "", domain.ProjectStatus("paused"), "u", "a@example.com")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("empty status defaults to planning", func(t *testing.T) {
		p, err := svc.CreateProject(ctx, "c", "P-1", "X", "", "", idx.New().String(), "a@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.ProjectPlanning, p.Status)
	})
}

func TestGetProject(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectService{Store: st}
	project, _ := createProject(t, st)

	got, err := svc.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, got.ID)

	_, err = svc.GetProject(ctx, idx.New().String())
	require.ErrorIs(t, err, ErrNotFound)
}
