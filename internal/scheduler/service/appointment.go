package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/metrics"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/idx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

// dateLayout is the calendar-date format accepted on query parameters.
const dateLayout = "2006-01-02"

type AppointmentService struct {
	Store store.Store
}

type CreateAppointmentInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	TechID    string
	ServiceID string
	BayID     string
	Status    string
	Source    string
}

// ListRange returns the tenant's appointments whose start time falls within
// the inclusive calendar-date range [startDate, endDate]. The range is
// validated before any storage access.
func (s *AppointmentService) ListRange(ctx context.Context, tenantID, startDate, endDate string) ([]domain.Appointment, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q", ErrInvalidRange, startDate)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: end %q", ErrInvalidRange, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end before start", ErrInvalidRange)
	}

	// Inclusive end date covers the whole final day.
	rangeEnd := end.AddDate(0, 0, 1).Add(-time.Millisecond)
	return s.Store.Appointments().ListAppointmentsInRange(ctx, tenantID, start, rangeEnd)
}

func (s *AppointmentService) GetAppointmentByID(ctx context.Context, tenantID, id string) (domain.Appointment, error) {
	return s.Store.Appointments().GetAppointmentByID(ctx, tenantID, id)
}

// Create books an appointment for the tenant. The technician must exist,
// End must be after Start, and the status must be a recognised one (empty
// defaults to scheduled). Overlapping bookings are allowed; the grid stacks
// them rather than rejecting the second write.
func (s *AppointmentService) Create(ctx context.Context, tenantID, createdBy string, in CreateAppointmentInput) (domain.Appointment, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(in.Title) == "" {
		return domain.Appointment{}, invalidf("title", "must not be empty")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return domain.Appointment{}, invalidf("start_time", "start and end are required")
	}
	if !in.EndTime.After(in.StartTime) {
		return domain.Appointment{}, invalidf("end_time", "must be after start_time")
	}
	if in.TechID == "" {
		return domain.Appointment{}, invalidf("tech_id", "must not be empty")
	}

	status := in.Status
	if status == "" {
		status = domain.StatusScheduled
	}
	if !slices.Contains(domain.AppointmentStatuses, status) {
		return domain.Appointment{}, invalidf("status", fmt.Sprintf("unknown status %q", status))
	}

	source := in.Source
	if source == "" {
		source = "web"
	}

	if _, err := s.Store.Technicians().GetTechnicianByID(ctx, tenantID, in.TechID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, invalidf("tech_id", fmt.Sprintf("unknown technician %q", in.TechID))
		}
		return domain.Appointment{}, err
	}

	appt := domain.Appointment{
		ID:        idx.New().String(),
		TenantID:  tenantID,
		Title:     strings.TrimSpace(in.Title),
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		TechID:    in.TechID,
		ServiceID: in.ServiceID,
		BayID:     in.BayID,
		Status:    status,
		Source:    source,
		CreatedBy: createdBy,
	}
	if err := s.Store.Appointments().CreateAppointment(ctx, appt); err != nil {
		return domain.Appointment{}, err
	}

	metrics.IncAppointmentCreated(status)
	l.Info("appointment created",
		slog.String("appointment_id", appt.ID),
		slog.String("tech_id", appt.TechID),
		slog.Time("start_time", appt.StartTime),
	)
	return appt, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	if !slices.Contains(domain.AppointmentStatuses, status) {
		return invalidf("status", fmt.Sprintf("unknown status %q", status))
	}
	return s.Store.Appointments().UpdateAppointmentStatus(ctx, tenantID, id, status)
}
