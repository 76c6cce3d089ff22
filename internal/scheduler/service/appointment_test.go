package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/stretchr/testify/require"
)

func TestAppointmentListRangeValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	appts := &service.AppointmentService{Store: s}

	for _, tc := range []struct {
		name       string
		start, end string
	}{
		{"garbage start", "not-a-date", "2026-08-24"},
		{"garbage end", "2026-08-24", "24/08/2026"},
		{"end before start", "2026-08-24", "2026-08-20"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := appts.ListRange(ctx, "t1", tc.start, tc.end)
			require.ErrorIs(t, err, service.ErrInvalidRange)
		})
	}
}

func TestAppointmentListRangeInclusiveEnd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech1", TenantID: "t1", Name: "Ray"}))

	appts := &service.AppointmentService{Store: s}

	// Late on the final day of the range.
	start := time.Date(2026, 8, 25, 23, 0, 0, 0, time.UTC)
	_, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
		Title: "Late job", StartTime: start, EndTime: start.Add(time.Hour), TechID: "tech1",
	})
	require.NoError(t, err)

	got, err := appts.ListRange(ctx, "t1", "2026-08-24", "2026-08-25")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestAppointmentCreate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech1", TenantID: "t1", Name: "Ray"}))

	appts := &service.AppointmentService{Store: s}
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	t.Run("defaults status and source", func(t *testing.T) {
		a, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
			Title: "Oil change", StartTime: start, EndTime: start.Add(30 * time.Minute), TechID: "tech1",
		})
		require.NoError(t, err)
		require.Equal(t, domain.StatusScheduled, a.Status)
		require.Equal(t, "web", a.Source)
		require.Equal(t, "u1", a.CreatedBy)
		require.NotEmpty(t, a.ID)
	})

	t.Run("end must be after start", func(t *testing.T) {
		_, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
			Title: "Backwards", StartTime: start, EndTime: start, TechID: "tech1",
		})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "end_time", verr.Field)
	})

	t.Run("unknown technician rejected", func(t *testing.T) {
		_, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
			Title: "Ghost", StartTime: start, EndTime: start.Add(time.Hour), TechID: "tech9",
		})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "tech_id", verr.Field)
	})

	t.Run("unrecognised status rejected", func(t *testing.T) {
		_, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
			Title: "Weird", StartTime: start, EndTime: start.Add(time.Hour), TechID: "tech1",
			Status: "parked",
		})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "status", verr.Field)
	})

	t.Run("overlapping booking is allowed", func(t *testing.T) {
		for range 2 {
			_, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
				Title: "Double", StartTime: start, EndTime: start.Add(time.Hour), TechID: "tech1",
			})
			require.NoError(t, err)
		}
	})
}

func TestAppointmentUpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")
	require.NoError(t, s.Technicians().CreateTechnician(ctx, domain.Technician{ID: "tech1", TenantID: "t1", Name: "Ray"}))

	appts := &service.AppointmentService{Store: s}
	start := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	a, err := appts.Create(ctx, "t1", "u1", service.CreateAppointmentInput{
		Title: "Alignment", StartTime: start, EndTime: start.Add(time.Hour), TechID: "tech1",
	})
	require.NoError(t, err)

	require.NoError(t, appts.UpdateStatus(ctx, "t1", a.ID, domain.StatusCompleted))

	got, err := appts.GetAppointmentByID(ctx, "t1", a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)

	t.Run("unrecognised status rejected", func(t *testing.T) {
		err := appts.UpdateStatus(ctx, "t1", a.ID, "parked")
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "status", verr.Field)
	})
}
