package teamsdk

import (
	"context"
	"net/http"
)

// CreateProject creates a project with the acting user as its founding owner.
func (a *ActorClient) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/projects", req, a.actorID)
	if err != nil {
		return nil, err
	}

	var project ProjectResponse
	if err := decodeJSON(resp, &project, http.StatusCreated); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject fetches a project by id.
func (a *ActorClient) GetProject(ctx context.Context, projectID string) (*ProjectResponse, error) {
	resp, err := a.client.doRequest(ctx, http.MethodGet, "/v1/projects/"+projectID, nil, a.actorID)
	if err != nil {
		return nil, err
	}

	var project ProjectResponse
	if err := decodeJSON(resp, &project, http.StatusOK); err != nil {
		return nil, err
	}
	return &project, nil
}

// ArchiveProject shelves a project and cascades its memberships to archived.
func (a *ActorClient) ArchiveProject(ctx context.Context, projectID string) error {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/projects/"+projectID+"/archive", nil, a.actorID)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UnarchiveProject reverses ArchiveProject, restoring each membership to the
// status it held before the cascade.
func (a *ActorClient) UnarchiveProject(ctx context.Context, projectID string) error {
	resp, err := a.client.doRequest(ctx, http.MethodPost, "/v1/projects/"+projectID+"/unarchive", nil, a.actorID)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
