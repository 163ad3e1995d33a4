/*
Package teamsdk provides a client SDK for the CrewHub team service.

# Overview

The package is organized around two types:

  - Client: unauthenticated operations (health probes, invitation decline)
    and the entry point for actor-scoped sessions
  - ActorClient: operations performed on behalf of a specific user, with the
    actor identity sent on every request

Create a Client for public endpoints:

	client := teamsdk.NewClient("https://team.example.com")

	health, err := client.GetLiveness(ctx)
	err = client.DeclineInvitation(ctx, token)

Bind an actor for everything else. The service trusts the fronting gateway to
assert identity, so the SDK simply forwards the acting user's ID:

	actor := client.AsActor(userID)

	project, err := actor.CreateProject(ctx, teamsdk.CreateProjectRequest{...})
	invite, err := actor.Invite(ctx, project.ID, teamsdk.InviteRequest{...})
	membership, err := actor.AcceptInvitation(ctx, inviteToken)

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
service's error code, so callers can branch on the specific failure:

	_, err := actor.AcceptInvitation(ctx, token)
	var apiErr *teamsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == teamsdk.ErrorCodeInviteExpired {
		// ask for a fresh invitation
	}

# Thread Safety

Client and ActorClient are safe for concurrent use; they hold no mutable
state beyond the underlying http.Client.
*/
package teamsdk
