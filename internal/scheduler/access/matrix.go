package access

import (
	"fmt"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
)

// Permission is a named capability granted to a role. Handlers and services
// reference permissions by name; they never re-list allowed roles at the
// call site.
type Permission string

const (
	PermViewScheduler     Permission = "view-scheduler"
	PermCreateAppointment Permission = "create-appointment"
	PermEditAppointment   Permission = "edit-appointment"
	PermManageTechs       Permission = "manage-techs"
	PermManageUsers       Permission = "manage-users"
	PermViewHR            Permission = "view-hr"
)

// matrix is the single source of truth binding roles to permissions. It is
// fixed at process start and never mutated. Every role in the closed set has
// an explicit entry, even if empty, so a missing entry means "unknown role"
// rather than "no permissions".
var matrix = map[domain.Role][]Permission{
	domain.RoleAdmin: {
		PermViewScheduler,
		PermCreateAppointment,
		PermEditAppointment,
		PermManageTechs,
		PermManageUsers,
		PermViewHR,
	},
	domain.RoleManager: {
		PermViewScheduler,
		PermCreateAppointment,
		PermEditAppointment,
		PermManageTechs,
		PermViewHR,
	},
	domain.RoleDispatch: {
		PermViewScheduler,
		PermCreateAppointment,
		PermEditAppointment,
	},
	domain.RoleTech: {
		PermViewScheduler,
	},
	domain.RoleViewOnly: {
		PermViewScheduler,
	},
}

// PermissionsFor returns the permission set for a role. An unrecognised role
// is an error, not an empty set: defaulting to empty would silently strip
// privileges on a typo'd role and be near-impossible to notice.
func PermissionsFor(role domain.Role) ([]Permission, error) {
	perms, ok := matrix[role]
	if !ok {
		return nil, fmt.Errorf("access: unknown role %q", role)
	}
	return perms, nil
}

// HasPermission reports whether role grants perm. Unknown roles report an
// error through the same path as PermissionsFor.
func HasPermission(role domain.Role, perm Permission) (bool, error) {
	perms, err := PermissionsFor(role)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p == perm {
			return true, nil
		}
	}
	return false, nil
}
