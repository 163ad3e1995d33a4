package team_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/pkg/teamsdk"
)

func TestProjectArchival(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	project, owner := createProject(t, client)

	worker := inviteAndAccept(t, client, owner, project.ID, "digger@example.com", "worker")

	t.Run("worker cannot archive", func(t *testing.T) {
		err := worker.ArchiveProject(t.Context(), project.ID)
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})

	t.Run("archive freezes the whole team", func(t *testing.T) {
		err := owner.ArchiveProject(t.Context(), project.ID)
		require.NoError(t, err)

		got, err := owner.GetProject(t.Context(), project.ID)
		require.NoError(t, err)
		require.True(t, got.Archived)

		team, err := owner.ListTeam(t.Context(), project.ID)
		require.NoError(t, err)
		for _, m := range team.Members {
			require.Equal(t, "archived", m.Status)
		}
	})

	t.Run("archived project refuses invitations", func(t *testing.T) {
		_, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "toolate@example.com",
			Role:  "worker",
		})
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("double archive is rejected", func(t *testing.T) {
		err := owner.ArchiveProject(t.Context(), project.ID)
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("unarchive restores prior statuses", func(t *testing.T) {
		err := owner.UnarchiveProject(t.Context(), project.ID)
		require.NoError(t, err)

		got, err := owner.GetProject(t.Context(), project.ID)
		require.NoError(t, err)
		require.False(t, got.Archived)

		membership, err := owner.GetMembership(t.Context(), project.ID, worker.ActorID())
		require.NoError(t, err)
		require.Equal(t, "active", membership.Status)

		// The team works again.
		_, err = owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "backinbusiness@example.com",
			Role:  "worker",
		})
		require.NoError(t, err)
	})

	t.Run("unarchive of an open project is rejected", func(t *testing.T) {
		err := owner.UnarchiveProject(t.Context(), project.ID)
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})
}
