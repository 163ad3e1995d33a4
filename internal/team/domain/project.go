package domain

import "time"

// ProjectStatus describes where a project sits in its delivery lifecycle.
// It is independent of the archived flag: archiving is reversible shelving,
// not a lifecycle stage.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted:
		return true
	}
	return false
}

// Project is the aggregate root every other record hangs off. Projects are
// never hard-deleted; Archived shelves a project and cascades its
// memberships to the archived status.
type Project struct {
	ID          string
	CompanyID   string
	Number      string
	Name        string
	Description string
	Status      ProjectStatus
	Archived    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
