package team_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/pkg/teamsdk"
)

func TestRoleChanges(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	project, owner := createProject(t, client)

	worker := inviteAndAccept(t, client, owner, project.ID, "promote-me@example.com", "worker")

	t.Run("manager can promote a worker", func(t *testing.T) {
		manager := inviteAndAccept(t, client, owner, project.ID, "pm@example.com", "project_manager")

		membership, err := manager.ChangeRole(t.Context(), project.ID, worker.ActorID(), teamsdk.ChangeRoleRequest{
			Role: "crew_lead",
		})
		require.NoError(t, err)
		require.Equal(t, "crew_lead", membership.Role)
	})

	t.Run("nobody can be promoted to owner", func(t *testing.T) {
		_, err := owner.ChangeRole(t.Context(), project.ID, worker.ActorID(), teamsdk.ChangeRoleRequest{
			Role: "owner",
		})
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("the owner cannot be demoted", func(t *testing.T) {
		_, err := owner.ChangeRole(t.Context(), project.ID, owner.ActorID(), teamsdk.ChangeRoleRequest{
			Role: "viewer",
		})
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("foreman cannot change roles", func(t *testing.T) {
		foreman := inviteAndAccept(t, client, owner, project.ID, "no-authority@example.com", "foreman")

		_, err := foreman.ChangeRole(t.Context(), project.ID, worker.ActorID(), teamsdk.ChangeRoleRequest{
			Role: "viewer",
		})
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})
}

func TestMemberRemoval(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	project, owner := createProject(t, client)

	t.Run("removed member loses the ability to act", func(t *testing.T) {
		super := inviteAndAccept(t, client, owner, project.ID, "super@example.com", "superintendent")

		err := owner.RemoveMember(t.Context(), project.ID, super.ActorID())
		require.NoError(t, err)

		membership, err := owner.GetMembership(t.Context(), project.ID, super.ActorID())
		require.NoError(t, err)
		require.Equal(t, "inactive", membership.Status)

		// A superintendent could invite, an ex-superintendent cannot.
		_, err = super.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "late@example.com",
			Role:  "worker",
		})
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})

	t.Run("the owner cannot be removed", func(t *testing.T) {
		err := owner.RemoveMember(t.Context(), project.ID, owner.ActorID())
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("removed member can be re-invited", func(t *testing.T) {
		boomerang := inviteAndAccept(t, client, owner, project.ID, "boomerang@example.com", "worker")

		err := owner.RemoveMember(t.Context(), project.ID, boomerang.ActorID())
		require.NoError(t, err)

		invite, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "boomerang@example.com",
			Role:  "foreman",
		})
		require.NoError(t, err)

		membership, err := boomerang.AcceptInvitation(t.Context(), invite.InviteToken)
		require.NoError(t, err)
		require.Equal(t, "active", membership.Status)
		require.Equal(t, "foreman", membership.Role)

		// Same person, same row: the team did not grow.
		team, err := owner.ListTeam(t.Context(), project.ID)
		require.NoError(t, err)
		rows := 0
		for _, m := range team.Members {
			if m.UserID == boomerang.ActorID() {
				rows++
			}
		}
		require.Equal(t, 1, rows)
	})
}

func TestTeamVisibility(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	project, owner := createProject(t, client)

	t.Run("outsider cannot list the team", func(t *testing.T) {
		outsider := client.AsActor(newUserID())
		_, err := outsider.ListTeam(t.Context(), project.ID)
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})

	t.Run("viewer can list but not mutate", func(t *testing.T) {
		viewer := inviteAndAccept(t, client, owner, project.ID, "viewer@example.com", "viewer")

		team, err := viewer.ListTeam(t.Context(), project.ID)
		require.NoError(t, err)
		require.NotEmpty(t, team.Members)

		_, err = viewer.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "sneaky@example.com",
			Role:  "worker",
		})
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})

	t.Run("missing actor header is unauthorized", func(t *testing.T) {
		noActor := client.AsActor("")
		_, err := noActor.ListTeam(t.Context(), project.ID)
		requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")
	})
}
