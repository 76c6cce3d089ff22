package domain

import "fmt"

// Role is one of the closed set of shop roles. There is no ordering or
// hierarchy between roles; what a role can do is decided purely by the
// capability matrix in internal/scheduler/access.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleDispatch Role = "DISPATCH"
	RoleTech     Role = "TECH"
	RoleViewOnly Role = "VIEW_ONLY"
)

// AllRoles lists every recognised role. Kept in sync with the capability
// matrix which must carry an explicit entry per role.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleDispatch, RoleTech, RoleViewOnly}

// ParseRole validates a stored or transmitted role string against the closed
// set. A typo'd role must surface as an error rather than silently becoming a
// permissionless principal.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	for _, known := range AllRoles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }
