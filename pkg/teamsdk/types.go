package teamsdk

import "time"

// ErrorResponse is the error envelope every non-2xx response carries.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports per-dependency health on the readiness probe.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// CreateProjectRequest creates a project with the acting user as its owner.
type CreateProjectRequest struct {
	CompanyID   string `json:"company_id"`
	Number      string `json:"number,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	OwnerEmail  string `json:"owner_email"`
}

// ProjectResponse describes a project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Number      string    `json:"number,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InviteRequest invites an email address to a project at a role.
type InviteRequest struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Message string `json:"message,omitempty"`
}

// InviteResponse carries the one-time reveal of the invitation token.
type InviteResponse struct {
	InvitationID string    `json:"invitation_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	InviteToken  string    `json:"invite_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AcceptInvitationRequest redeems an invitation token.
type AcceptInvitationRequest struct {
	InviteToken string `json:"invite_token"`
}

// DeclineInvitationRequest declines an invitation token.
type DeclineInvitationRequest struct {
	InviteToken string `json:"invite_token"`
}

// MembershipResponse describes a team membership row.
type MembershipResponse struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	UserID     string     `json:"user_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	InvitedBy  string     `json:"invited_by"`
	InvitedAt  time.Time  `json:"invited_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TeamResponse lists every membership of a project.
type TeamResponse struct {
	Members []MembershipResponse `json:"members"`
}

// ChangeRoleRequest updates a member's role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CreateCrewRequest creates a crew under a designated lead.
type CreateCrewRequest struct {
	LeadID      string `json:"lead_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// CrewResponse describes a crew.
type CrewResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	LeadID      string    `json:"lead_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddCrewMemberRequest assigns a project member to a crew.
type AddCrewMemberRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// CrewMembershipResponse describes one stint on a crew.
type CrewMembershipResponse struct {
	ID        string     `json:"id"`
	CrewID    string     `json:"crew_id"`
	UserID    string     `json:"user_id"`
	Role      string     `json:"role"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CrewMembersResponse lists a crew's membership rows, active first.
type CrewMembersResponse struct {
	Members []CrewMembershipResponse `json:"members"`
}

// CandidatesResponse lists project members eligible to join a crew.
type CandidatesResponse struct {
	Candidates []MembershipResponse `json:"candidates"`
}
