package domain

import "time"

// CrewType classifies the trade a crew performs.
type CrewType string

const (
	CrewElectrical  CrewType = "electrical"
	CrewCivil       CrewType = "civil"
	CrewMechanical  CrewType = "mechanical"
	CrewGeneral     CrewType = "general"
	CrewSpecialized CrewType = "specialized"
)

func (t CrewType) Valid() bool {
	switch t {
	case CrewElectrical, CrewCivil, CrewMechanical, CrewGeneral, CrewSpecialized:
		return true
	}
	return false
}

// CrewRole is the role a member plays within a crew. The lead is tracked on
// the Crew record itself and is never duplicated as a membership row.
type CrewRole string

const (
	CrewRoleLead       CrewRole = "lead"
	CrewRoleMember     CrewRole = "member"
	CrewRoleApprentice CrewRole = "apprentice"
)

func (r CrewRole) Valid() bool {
	switch r {
	case CrewRoleLead, CrewRoleMember, CrewRoleApprentice:
		return true
	}
	return false
}

// Crew is a work sub-grouping of active project members under a designated
// lead. The lead must hold an active team membership in the crew's project.
type Crew struct {
	ID          string
	ProjectID   string
	LeadID      string
	Name        string
	Type        CrewType
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CrewMembership records a member's stint on a crew. Removal stamps EndDate
// and clears Active rather than deleting, so a user may have several
// historical rows per crew but at most one active one.
type CrewMembership struct {
	ID        string
	CrewID    string
	UserID    string
	Role      CrewRole
	StartDate time.Time
	EndDate   *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
