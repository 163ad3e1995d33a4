package teamsdk

import (
	"context"
	"net/http"
)

// CreateCrew creates an active crew in a project under a designated lead.
func (a *ActorClient) CreateCrew(ctx context.Context, projectID string, req CreateCrewRequest) (*CrewResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/projects/"+projectID+"/crews", req, a.actorID)
	if err != nil {
		return nil, err
	}

	var crew CrewResponse
	if err := decodeJSON(resp, &crew, http.StatusCreated); err != nil {
		return nil, err
	}
	return &crew, nil
}

// ListCrews lists a project's crews.
func (a *ActorClient) ListCrews(ctx context.Context, projectID string) ([]CrewResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/projects/"+projectID+"/crews", nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var crews []CrewResponse
	if err := decodeJSON(resp, &crews, http.StatusOK); err != nil {
		return nil, err
	}
	return crews, nil
}

// DeactivateCrew soft-deactivates a crew, keeping its membership history.
func (a *ActorClient) DeactivateCrew(ctx context.Context, crewID string) error {
	resp, err := a.client.doRequest(ctx, http.MethodDelete, "/v1/crews/"+crewID, nil, a.actorID)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// AddCrewMember assigns an active project member to a crew.
func (a *ActorClient) AddCrewMember(ctx context.Context, crewID string, req AddCrewMemberRequest) (*CrewMembershipResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/crews/"+crewID+"/members", req, a.actorID)
	if err != nil {
		return nil, err
	}

	var membership CrewMembershipResponse
	if err := decodeJSON(resp, &membership, http.StatusCreated); err != nil {
		return nil, err
	}
	return &membership, nil
}

// RemoveCrewMember ends a member's active stint on a crew.
func (a *ActorClient) RemoveCrewMember(ctx context.Context, crewID, userID string) error {
	resp, err := a.client.doRequest(ctx, http.MethodDelete, "/v1/crews/"+crewID+"/members/"+userID, nil, a.actorID)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ListCrewMembers lists a crew's membership rows, active first.
func (a *ActorClient) ListCrewMembers(ctx context.Context, crewID string) (*CrewMembersResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/crews/"+crewID+"/members", nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var members CrewMembersResponse
	if err := decodeJSON(resp, &members, http.StatusOK); err != nil {
		return nil, err
	}
	return &members, nil
}

// ListCandidates lists active project members eligible to join the crew.
func (a *ActorClient) ListCandidates(ctx context.Context, crewID string) (*CandidatesResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/crews/"+crewID+"/candidates", nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var candidates CandidatesResponse
	if err := decodeJSON(resp, &candidates, http.StatusOK); err != nil {
		return nil, err
	}
	return &candidates, nil
}
