package service_test

import (
	"context"
	"testing"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/stretchr/testify/require"
)

func TestBootstrapSeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boot := &service.BootstrapService{
		Store:         s,
		TenantName:    "Patriot Auto",
		AdminEmail:    "admin@shop.test",
		AdminPassword: "first-run-secret",
	}
	require.NoError(t, boot.EnsureBootstrapped(ctx))

	admin, err := s.Users().GetUserByEmail(ctx, "admin@shop.test")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	tenant, err := s.Tenants().GetTenantByID(ctx, admin.TenantID)
	require.NoError(t, err)
	require.Equal(t, "Patriot Auto", tenant.Name)

	// Second run is a no-op, even with different config.
	boot.AdminEmail = "other@shop.test"
	require.NoError(t, boot.EnsureBootstrapped(ctx))
	users, err := s.Users().ListUsers(ctx, admin.TenantID)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestBootstrapWithoutAdminConfigured(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boot := &service.BootstrapService{Store: s, TenantName: "Patriot Auto"}
	require.NoError(t, boot.EnsureBootstrapped(ctx))

	empty, err := s.Tenants().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)
}
