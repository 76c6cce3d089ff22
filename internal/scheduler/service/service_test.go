package service_test

import (
	"context"
	"testing"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/internal/scheduler/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedTenant(t *testing.T, s store.Store, id string) {
	t.Helper()
	require.NoError(t, s.Tenants().CreateTenant(context.Background(), domain.Tenant{ID: id, Name: "Shop " + id}))
}
