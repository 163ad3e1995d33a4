package domain

// Role is a project-level role held by a team member. The set is fixed;
// roles are matched by explicit allow-lists per action, never by numeric
// level comparison.
type Role string

const (
	RoleOwner          Role = "owner"
	RoleProjectManager Role = "project_manager"
	RoleSuperintendent Role = "superintendent"
	RoleForeman        Role = "foreman"
	RoleCrewLead       Role = "crew_lead"
	RoleSafetyOfficer  Role = "safety_officer"
	RoleQCInspector    Role = "qc_inspector"
	RoleAdmin          Role = "admin"
	RoleWorker         Role = "worker"
	RoleViewer         Role = "viewer"
)

// Roles lists every valid role in display order.
var Roles = []Role{
	RoleOwner,
	RoleProjectManager,
	RoleSuperintendent,
	RoleForeman,
	RoleCrewLead,
	RoleSafetyOfficer,
	RoleQCInspector,
	RoleAdmin,
	RoleWorker,
	RoleViewer,
}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }
