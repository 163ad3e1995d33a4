package team_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridline/crewhub/pkg/teamsdk"
)

func TestInvitationFlow(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewClient(baseURL)
	project, owner := createProject(t, client)

	t.Run("owner membership exists after project creation", func(t *testing.T) {
		team, err := owner.ListTeam(t.Context(), project.ID)
		require.NoError(t, err)
		require.Len(t, team.Members, 1)
		require.Equal(t, "owner", team.Members[0].Role)
		require.Equal(t, "active", team.Members[0].Status)
		require.Equal(t, owner.ActorID(), team.Members[0].UserID)
	})

	t.Run("invite and accept creates an active membership", func(t *testing.T) {
		member := inviteAndAccept(t, client, owner, project.ID, "foreman@example.com", "foreman")

		membership, err := owner.GetMembership(t.Context(), project.ID, member.ActorID())
		require.NoError(t, err)
		require.Equal(t, "foreman", membership.Role)
		require.Equal(t, "active", membership.Status)
		require.NotNil(t, membership.AcceptedAt)
	})

	t.Run("token is single use", func(t *testing.T) {
		invite, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "qc@example.com",
			Role:  "qc_inspector",
		})
		require.NoError(t, err)

		first := client.AsActor(newUserID())
		_, err = first.AcceptInvitation(t.Context(), invite.InviteToken)
		require.NoError(t, err)

		second := client.AsActor(newUserID())
		_, err = second.AcceptInvitation(t.Context(), invite.InviteToken)
		requireAPIError(t, err, http.StatusConflict, "invite_already_used")
	})

	t.Run("declined token cannot be accepted", func(t *testing.T) {
		invite, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "declined@example.com",
			Role:  "worker",
		})
		require.NoError(t, err)

		// Declining needs no actor header, holding the token is enough.
		err = client.DeclineInvitation(t.Context(), invite.InviteToken)
		require.NoError(t, err)

		// Declining again is a no-op.
		err = client.DeclineInvitation(t.Context(), invite.InviteToken)
		require.NoError(t, err)

		user := client.AsActor(newUserID())
		_, err = user.AcceptInvitation(t.Context(), invite.InviteToken)
		requireAPIError(t, err, http.StatusConflict, "invite_already_used")
	})

	t.Run("garbage token is not found", func(t *testing.T) {
		user := client.AsActor(newUserID())
		_, err := user.AcceptInvitation(t.Context(), "definitely-not-a-token")
		requireAPIError(t, err, http.StatusNotFound, "not_found")
	})

	t.Run("worker cannot invite", func(t *testing.T) {
		worker := inviteAndAccept(t, client, owner, project.ID, "lowly@example.com", "worker")

		_, err := worker.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "friend@example.com",
			Role:  "worker",
		})
		requireAPIError(t, err, http.StatusForbidden, "forbidden")
	})

	t.Run("owner role cannot be granted by invitation", func(t *testing.T) {
		_, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "usurper@example.com",
			Role:  "owner",
		})
		requireAPIError(t, err, http.StatusUnprocessableEntity, "invalid_transition")
	})

	t.Run("re-inviting supersedes the earlier pending token", func(t *testing.T) {
		first, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "swapped@example.com",
			Role:  "worker",
		})
		require.NoError(t, err)

		second, err := owner.Invite(t.Context(), project.ID, teamsdk.InviteRequest{
			Email: "swapped@example.com",
			Role:  "crew_lead",
		})
		require.NoError(t, err)

		user := client.AsActor(newUserID())
		_, err = user.AcceptInvitation(t.Context(), first.InviteToken)
		requireAPIError(t, err, http.StatusGone, "invite_expired")

		membership, err := user.AcceptInvitation(t.Context(), second.InviteToken)
		require.NoError(t, err)
		require.Equal(t, "crew_lead", membership.Role)
	})
}
