package access

import (
	"testing"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/stretchr/testify/require"
)

func TestEveryRoleHasAnEntry(t *testing.T) {
	t.Parallel()

	for _, role := range domain.AllRoles {
		perms, err := PermissionsFor(role)
		require.NoError(t, err, "role %s must have an explicit matrix entry", role)
		require.NotNil(t, perms)
	}
}

func TestUnknownRoleIsAnError(t *testing.T) {
	t.Parallel()

	_, err := PermissionsFor(domain.Role("SUPERVISOR"))
	require.Error(t, err)

	_, err = HasPermission(domain.Role(""), PermViewScheduler)
	require.Error(t, err)
}

func TestMatrixLookups(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role domain.Role
		perm Permission
		want bool
	}{
		{domain.RoleAdmin, PermManageUsers, true},
		{domain.RoleManager, PermManageUsers, false},
		{domain.RoleManager, PermViewHR, true},
		{domain.RoleDispatch, PermCreateAppointment, true},
		{domain.RoleDispatch, PermManageTechs, false},
		{domain.RoleTech, PermViewScheduler, true},
		{domain.RoleTech, PermCreateAppointment, false},
		{domain.RoleViewOnly, PermViewScheduler, true},
		{domain.RoleViewOnly, PermEditAppointment, false},
	}

	for _, tc := range cases {
		got, err := HasPermission(tc.role, tc.perm)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s / %s", tc.role, tc.perm)
	}
}
