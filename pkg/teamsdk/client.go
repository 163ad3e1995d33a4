package teamsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the CrewHub team service. It provides the public
// endpoints directly and creates actor-scoped clients for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new team service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AsActor binds an acting user to the client. All operations through the
// returned ActorClient are performed on that user's behalf.
func (c *Client) AsActor(actorID string) *ActorClient {
	return &ActorClient{client: c, actorID: actorID}
}

// GetLiveness probes /livez.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness probes /readyz.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// DeclineInvitation declines an invitation token. No actor identity is
// required; holding the token is proof enough, and the invitee may not have
// an account. Declining twice succeeds quietly.
func (c *Client) DeclineInvitation(ctx context.Context, inviteToken string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/decline",
		DeclineInvitationRequest{InviteToken: inviteToken}, "")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ActorClient performs operations on behalf of a bound acting user.
type ActorClient struct {
	client  *Client
	actorID string
}

// ActorID returns the bound acting user's ID.
func (a *ActorClient) ActorID() string { return a.actorID }
