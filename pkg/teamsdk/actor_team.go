package teamsdk

import (
	"context"
	"net/http"
)

// Invite invites an email address to the project. The response carries the
// one-time reveal of the invitation token.
func (a *ActorClient) Invite(ctx context.Context, projectID string, req InviteRequest) (*InviteResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/projects/"+projectID+"/invitations", req, a.actorID)
	if err != nil {
		return nil, err
	}

	var invite InviteResponse
	if err := decodeJSON(resp, &invite, http.StatusCreated); err != nil {
		return nil, err
	}
	return &invite, nil
}

// AcceptInvitation redeems an invitation token for the acting user, creating
// or reactivating their membership at the invited role.
func (a *ActorClient) AcceptInvitation(ctx context.Context, inviteToken string) (*MembershipResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/invitations/accept",
		AcceptInvitationRequest{InviteToken: inviteToken}, a.actorID)
	if err != nil {
		return nil, err
	}

	var membership MembershipResponse
	if err := decodeJSON(resp, &membership, http.StatusOK); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListTeam lists every membership of a project, all statuses.
func (a *ActorClient) ListTeam(ctx context.Context, projectID string) (*TeamResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/projects/"+projectID+"/team", nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var team TeamResponse
	if err := decodeJSON(resp, &team, http.StatusOK); err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMembership fetches a single member's row, including their role.
func (a *ActorClient) GetMembership(ctx context.Context, projectID, userID string) (*MembershipResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/projects/"+projectID+"/team/"+userID, nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var membership MembershipResponse
	if err := decodeJSON(resp, &membership, http.StatusOK); err != nil {
		return nil, err
	}
	return &membership, nil
}

// ChangeRole updates a member's role in place. Owner memberships are
// unreachable through this path.
func (a *ActorClient) ChangeRole(ctx context.Context, projectID, userID string, req ChangeRoleRequest) (*MembershipResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPatch, "/v1/projects/"+projectID+"/team/"+userID, req, a.actorID)
	if err != nil {
		return nil, err
	}

	var membership MembershipResponse
	if err := decodeJSON(resp, &membership, http.StatusOK); err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveMember soft-removes a member; their row and crew history remain.
func (a *ActorClient) RemoveMember(ctx context.Context, projectID, userID string) error {
	resp, err := a.client.doRequest(ctx, http.MethodDelete, "/v1/projects/"+projectID+"/team/"+userID, nil, a.actorID)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
