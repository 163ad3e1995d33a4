package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/internal/team/store/drivers/sqlite"
	"github.com/gridline/crewhub/pkg/idx"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// createProject seeds a project with its founding owner and returns both.
func createProject(t *testing.T, st *sqlite.Store) (domain.Project, string) {
	t.Helper()

	ownerID := idx.New().String()
	svc := &ProjectService{Store: st}
	project, err := svc.CreateProject(
		context.Background(),
		"company-1", "P-100", "Riverside Substation", "",
		domain.ProjectActive,
		ownerID, "owner@example.com",
	)
	require.NoError(t, err)
	return project, ownerID
}

// addMember seeds a membership row directly, bypassing the invitation flow.
func addMember(
	t *testing.T,
	st *sqlite.Store,
	projectID string,
	role domain.Role,
	status domain.MembershipStatus,
) domain.TeamMembership {
	t.Helper()

	now := time.Now().UTC()
	userID := idx.New().String()
	acceptedAt := now
	m := domain.TeamMembership{
		ID:         idx.New().String(),
		ProjectID:  projectID,
		UserID:     userID,
		Email:      userID + "@example.com",
		Role:       role,
		Status:     status,
		InvitedBy:  "seed",
		InvitedAt:  now,
		AcceptedAt: &acceptedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, st.Memberships().CreateMembership(context.Background(), m))
	return m
}
