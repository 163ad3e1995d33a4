package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/pkg/idx"
)

func TestCreateCrew(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)
	svc := &CrewService{Store: st}

	lead := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipActive)

	t.Run("foreman may create", func(t *testing.T) {
		foreman := addMember(t, st, project.ID, domain.RoleForeman, domain.MembershipActive)

		crew, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Night Shift Electrical", domain.CrewElectrical, "", foreman.UserID)
		require.NoError(t, err)
		require.True(t, crew.Active)
		require.Equal(t, lead.UserID, crew.LeadID)
		require.Equal(t, domain.CrewElectrical, crew.Type)

		stored, err := st.Crews().GetCrew(ctx, crew.ID)
		require.NoError(t, err)
		require.Equal(t, crew.ID, stored.ID)
	})

	t.Run("worker may not", func(t *testing.T) {
		worker := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
		_, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Crew B", domain.CrewCivil, "", worker.UserID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown crew type", func(t *testing.T) {
		_, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Crew C", domain.CrewType("plumbing"), "", ownerID)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("lead outside the project", func(t *testing.T) {
		_, err := svc.CreateCrew(ctx, project.ID, idx.New().String(), "Crew D", domain.CrewGeneral, "", ownerID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("inactive lead", func(t *testing.T) {
		gone := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipInactive)
		_, err := svc.CreateCrew(ctx, project.ID, gone.UserID, "Crew E", domain.CrewGeneral, "", ownerID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.CreateCrew(ctx, idx.New().String(), lead.UserID, "Crew F", domain.CrewGeneral, "", ownerID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAddAndRemoveCrewMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)
	svc := &CrewService{Store: st}

	lead := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipActive)
	crew, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Civil Works", domain.CrewCivil, "", ownerID)
	require.NoError(t, err)

	target := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)

	t.Run("adds an active project member", func(t *testing.T) {
		m, err := svc.AddMember(ctx, crew.ID, target.UserID, domain.CrewRoleMember, ownerID)
		require.NoError(t, err)
		require.True(t, m.Active)
		require.Nil(t, m.EndDate)
		require.False(t, m.StartDate.IsZero())
	})

	t.Run("second active stint rejected", func(t *testing.T) {
		_, err := svc.AddMember(ctx, crew.ID, target.UserID, domain.CrewRoleMember, ownerID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("lead never appears as a member row", func(t *testing.T) {
		_, err := svc.AddMember(ctx, crew.ID, lead.UserID, domain.CrewRoleLead, ownerID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("inactive project member rejected", func(t *testing.T) {
		inactive := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipInactive)
		_, err := svc.AddMember(ctx, crew.ID, inactive.UserID, domain.CrewRoleMember, ownerID)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("outsider target rejected", func(t *testing.T) {
		_, err := svc.AddMember(ctx, crew.ID, idx.New().String(), domain.CrewRoleMember, ownerID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("worker actor may not manage", func(t *testing.T) {
		worker := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
		_, err := svc.AddMember(ctx, crew.ID, worker.UserID, domain.CrewRoleMember, worker.UserID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("removal stamps the stint", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(ctx, crew.ID, target.UserID, ownerID))

		rows, err := st.CrewMemberships().ListCrewMembers(ctx, crew.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.False(t, rows[0].Active)
		require.NotNil(t, rows[0].EndDate)
	})

	t.Run("removing an absent member", func(t *testing.T) {
		require.ErrorIs(t, svc.RemoveMember(ctx, crew.ID, target.UserID, ownerID), ErrNotFound)
	})

	t.Run("re-add opens a second stint", func(t *testing.T) {
		_, err := svc.AddMember(ctx, crew.ID, target.UserID, domain.CrewRoleApprentice, ownerID)
		require.NoError(t, err)

		rows, err := st.CrewMemberships().ListCrewMembers(ctx, crew.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
	})
}

func TestDeactivateCrew(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)
	svc := &CrewService{Store: st}

	lead := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipActive)
	crew, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Mechanical", domain.CrewMechanical, "", ownerID)
	require.NoError(t, err)

	t.Run("worker may not deactivate", func(t *testing.T) {
		worker := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
		require.ErrorIs(t, svc.DeactivateCrew(ctx, crew.ID, worker.UserID), ErrForbidden)
	})

	t.Run("deactivates and stays deactivated", func(t *testing.T) {
		require.NoError(t, svc.DeactivateCrew(ctx, crew.ID, ownerID))

		stored, err := st.Crews().GetCrew(ctx, crew.ID)
		require.NoError(t, err)
		require.False(t, stored.Active)

		require.NoError(t, svc.DeactivateCrew(ctx, crew.ID, ownerID))
	})

	t.Run("inactive crew takes no members", func(t *testing.T) {
		target := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
		_, err := svc.AddMember(ctx, crew.ID, target.UserID, domain.CrewRoleMember, ownerID)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestAvailableCandidates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)
	svc := &CrewService{Store: st}

	lead := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipActive)
	crew, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "General", domain.CrewGeneral, "", ownerID)
	require.NoError(t, err)

	assigned := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
	_, err = svc.AddMember(ctx, crew.ID, assigned.UserID, domain.CrewRoleMember, ownerID)
	require.NoError(t, err)

	free := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
	addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipInactive)

	candidates, err := svc.AvailableCandidates(ctx, crew.ID, ownerID)
	require.NoError(t, err)

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.UserID)
	}
	require.Contains(t, ids, free.UserID)
	require.Contains(t, ids, ownerID)
	require.NotContains(t, ids, lead.UserID)
	require.NotContains(t, ids, assigned.UserID)

	// A former member becomes available again.
	require.NoError(t, svc.RemoveMember(ctx, crew.ID, assigned.UserID, ownerID))
	candidates, err = svc.AvailableCandidates(ctx, crew.ID, ownerID)
	require.NoError(t, err)
	ids = ids[:0]
	for _, c := range candidates {
		ids = append(ids, c.UserID)
	}
	require.Contains(t, ids, assigned.UserID)
}

func TestListCrewMembers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project, ownerID := createProject(t, st)
	svc := &CrewService{Store: st}

	lead := addMember(t, st, project.ID, domain.RoleCrewLead, domain.MembershipActive)
	crew, err := svc.CreateCrew(ctx, project.ID, lead.UserID, "Specialized", domain.CrewSpecialized, "", ownerID)
	require.NoError(t, err)

	t.Run("any project member may list", func(t *testing.T) {
		worker := addMember(t, st, project.ID, domain.RoleWorker, domain.MembershipActive)
		rows, err := svc.ListCrewMembers(ctx, crew.ID, worker.UserID)
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("outsiders may not", func(t *testing.T) {
		_, err := svc.ListCrewMembers(ctx, crew.ID, idx.New().String())
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown crew", func(t *testing.T) {
		_, err := svc.ListCrewMembers(ctx, idx.New().String(), ownerID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
