package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedTenant(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.Tenants().CreateTenant(context.Background(), domain.Tenant{ID: id, Name: "Shop " + id}))
}

func TestTenantRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Tenants().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	seedTenant(t, s, "t1")

	tenant, err := s.Tenants().GetTenantByID(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "Shop t1", tenant.Name)

	empty, err = s.Tenants().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	_, err = s.Tenants().GetTenantByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersTenantScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	seedTenant(t, s, "t2")

	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: "u1", TenantID: "t1", Email: "a@shop.test", PasswordHash: "h", Role: domain.RoleAdmin,
	}))

	// Lookup succeeds under the owning tenant only.
	u, err := s.Users().GetUserByID(ctx, "t1", "u1")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)

	_, err = s.Users().GetUserByID(ctx, "t2", "u1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Pre-auth email lookup carries the tenant back.
	u, err = s.Users().GetUserByEmail(ctx, "a@shop.test")
	require.NoError(t, err)
	require.Equal(t, "t1", u.TenantID)

	// Duplicate email is a conflict.
	err = s.Users().CreateUser(ctx, domain.User{
		ID: "u2", TenantID: "t2", Email: "a@shop.test", PasswordHash: "h", Role: domain.RoleTech,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Re-using an id is a conflict too.
	err = s.Users().CreateUser(ctx, domain.User{
		ID: "u1", TenantID: "t1", Email: "b@shop.test", PasswordHash: "h", Role: domain.RoleTech,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestTechniciansListOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")

	for i, name := range []string{"Zeke", "Amy", "Mo"} {
		require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{
			ID: string(rune('a'+i)), TenantID: "t1", Name: name, Skills: []string{"brakes"},
		}))
	}

	techs, err := s.Technicians().ListTechnicians(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, techs, 3)

	// Creation order, not alphabetical.
	require.Equal(t, "Zeke", techs[0].Name)
	require.Equal(t, "Amy", techs[1].Name)
	require.Equal(t, "Mo", techs[2].Name)
	require.Equal(t, []string{"brakes"}, techs[0].Skills)
}

func TestServicesSkillsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")

	require.NoError(t, s.Services().CreateService(ctx, domain.Service{
		ID: "s1", TenantID: "t1", Name: "Brake job", DurationMinutes: 90,
		RequiredSkills: []string{"brakes", "hydraulics"},
	}))

	services, err := s.Services().ListServices(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, []string{"brakes", "hydraulics"}, services[0].RequiredSkills)
	require.Equal(t, 90, services[0].DurationMinutes)
}

func TestAppointmentsRangeAndTenantFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	seedTenant(t, s, "t2")

	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech1", TenantID: "t1", Name: "Ray"}))
	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech2", TenantID: "t2", Name: "Kim"}))

	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	mk := func(id, tenant, tech string, start time.Time) domain.Appointment {
		return domain.Appointment{
			ID: id, TenantID: tenant, Title: "Job " + id, TechID: tech,
			StartTime: start, EndTime: start.Add(time.Hour),
			Status: domain.StatusScheduled, Source: "web", CreatedBy: "u1",
		}
	}

	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("a1", "t1", "tech1", day.Add(9*time.Hour))))
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("a2", "t1", "tech1", day.Add(14*time.Hour))))
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("a3", "t1", "tech1", day.AddDate(0, 0, 1).Add(9*time.Hour))))
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("b1", "t2", "tech2", day.Add(9*time.Hour))))

	got, err := s.Appointments().ListAppointmentsInRange(ctx, "t1",
		day, day.Add(24*time.Hour-time.Millisecond))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a1", got[0].ID)
	require.Equal(t, "a2", got[1].ID)

	// Cross-tenant rows never come back, even for the same time range.
	for _, a := range got {
		require.Equal(t, "t1", a.TenantID)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech1", TenantID: "t1", Name: "Ray"}))

	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Appointments().CreateAppointment(ctx, domain.Appointment{
		ID: "a1", TenantID: "t1", Title: "Oil", TechID: "tech1",
		StartTime: start, EndTime: start.Add(30 * time.Minute),
		Status: domain.StatusScheduled, Source: "web", CreatedBy: "u1",
	}))

	require.NoError(t, s.Appointments().UpdateAppointmentStatus(ctx, "t1", "a1", domain.StatusCompleted))

	a, err := s.Appointments().GetAppointmentByID(ctx, "t1", "a1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, a.Status)

	// Status updates are tenant scoped too.
	err = s.Appointments().UpdateAppointmentStatus(ctx, "t2", "a1", domain.StatusCancelled)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUserTenantScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	seedTenant(t, s, "t2")

	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: "u1", TenantID: "t1", Email: "a@shop.test", PasswordHash: "h", Role: domain.RoleTech,
	}))

	// Another tenant's delete does not touch the row.
	err := s.Users().DeleteUser(ctx, "t2", "u1")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByID(ctx, "t1", "u1")
	require.NoError(t, err)

	require.NoError(t, s.Users().DeleteUser(ctx, "t1", "u1"))
	_, err = s.Users().GetUserByID(ctx, "t1", "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTechnicianTenantScoping(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	seedTenant(t, s, "t2")

	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{
		ID: "tech1", TenantID: "t1", Name: "Ray",
	}))

	err := s.Technicians().DeleteTechnician(ctx, "t2", "tech1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Technicians().DeleteTechnician(ctx, "t1", "tech1"))
	_, err = s.Technicians().GetTechnicianByID(ctx, "t1", "tech1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID: "u1", TenantID: "t1", Email: "x@shop.test", PasswordHash: "h", Role: domain.RoleTech,
		}); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	_, err = s.Users().GetUserByEmail(ctx, "x@shop.test")
	require.ErrorIs(t, err, store.ErrNotFound)
}
