package http

import (
	"github.com/gridline/crewhub/internal/team/domain"
	"github.com/gridline/crewhub/pkg/teamsdk"
)

func projectResponse(p domain.Project) teamsdk.ProjectResponse {
	return teamsdk.ProjectResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Number:      p.Number,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Archived:    p.Archived,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func membershipResponse(m domain.TeamMembership) teamsdk.MembershipResponse {
	return teamsdk.MembershipResponse{
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		UserID:     m.UserID,
		Email:      m.Email,
		Role:       string(m.Role),
		Status:     string(m.Status),
		InvitedBy:  m.InvitedBy,
		InvitedAt:  m.InvitedAt,
		AcceptedAt: m.AcceptedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func membershipResponses(ms []domain.TeamMembership) []teamsdk.MembershipResponse {
	out := make([]teamsdk.MembershipResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, membershipResponse(m))
	}
	return out
}

func crewResponse(c domain.Crew) teamsdk.CrewResponse {
	return teamsdk.CrewResponse{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		LeadID:      c.LeadID,
		Name:        c.Name,
		Type:        string(c.Type),
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func crewMembershipResponse(m domain.CrewMembership) teamsdk.CrewMembershipResponse {
	return teamsdk.CrewMembershipResponse{
		ID:        m.ID,
		CrewID:    m.CrewID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
