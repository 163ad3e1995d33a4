package domain

// Action is an operation gated by the permission evaluator.
type Action string

const (
	ActionInviteMember      Action = "invite_member"
	ActionChangeRole        Action = "change_role"
	ActionRemoveMember      Action = "remove_member"
	ActionCreateCrew        Action = "create_crew"
	ActionManageCrewMembers Action = "manage_crew_members"
	ActionArchiveProject    Action = "archive_project"
)

// allowedRoles is the authorization policy as a fixed table. Team management
// and project archival are reserved for project leadership; crew management
// additionally extends to foremen. Owner-targeted protections (a membership
// with the owner role can never be changed or removed) are enforced by the
// services, not here, and surface as an invalid transition rather than a
// permission denial.
var allowedRoles = map[Action]map[Role]struct{}{
	ActionInviteMember:      roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent),
	ActionChangeRole:        roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent),
	ActionRemoveMember:      roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent),
	ActionArchiveProject:    roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent),
	ActionCreateCrew:        roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent, RoleForeman),
	ActionManageCrewMembers: roleSet(RoleOwner, RoleProjectManager, RoleSuperintendent, RoleForeman),
}

// Allowed reports whether a member holding role may perform action. It is a
// pure decision function; callers translate a false result into a Forbidden
// error, never into a silent no-op.
func Allowed(role Role, action Action) bool {
	set, ok := allowedRoles[action]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}

func roleSet(roles ...Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}
