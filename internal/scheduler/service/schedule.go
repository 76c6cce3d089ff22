package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/grid"
	"github.com/patriotauto/scheduler/internal/scheduler/metrics"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
)

// ScheduleService builds the per-day technician grid: one column per
// technician, one row per time slot, appointments laid in as blocks.
type ScheduleService struct {
	Store store.Store
	Hours grid.BusinessHours
}

// DaySchedule is a placed grid for one calendar day.
type DaySchedule struct {
	Date   string
	Placed *grid.PlacedGrid
}

// BuildDay fetches the tenant's technicians and the day's appointments
// concurrently, then builds and fills the grid. Appointment fetch covers
// [date 00:00, date 23:59:59.999] UTC.
func (s *ScheduleService) BuildDay(ctx context.Context, tenantID, date string) (*DaySchedule, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	start := day
	end := day.AddDate(0, 0, 1).Add(-time.Millisecond)

	var (
		techs   []domain.Technician
		appts   []domain.Appointment
		techErr error
		apptErr error
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		techs, techErr = s.Store.Technicians().ListTechnicians(ctx, tenantID)
	}()
	go func() {
		defer wg.Done()
		appts, apptErr = s.Store.Appointments().ListAppointmentsInRange(ctx, tenantID, start, end)
	}()
	wg.Wait()
	if techErr != nil {
		return nil, techErr
	}
	if apptErr != nil {
		return nil, apptErr
	}

	resources := make([]grid.Resource, len(techs))
	for i, t := range techs {
		resources[i] = grid.Resource{ID: t.ID, Name: t.Name}
	}
	g, err := grid.Build(resources, s.Hours)
	if err != nil {
		return nil, err
	}

	inputs := make([]grid.PlacementInput, len(appts))
	for i, a := range appts {
		inputs[i] = grid.PlacementInput{
			ID:         a.ID,
			Title:      a.Title,
			Status:     a.Status,
			ResourceID: a.TechID,
			Start:      a.StartTime,
			End:        a.EndTime,
		}
	}

	placed := grid.Place(ctx, g, inputs)
	for _, sk := range placed.Skipped {
		metrics.IncPlacementSkip(sk.Reason)
	}

	return &DaySchedule{Date: date, Placed: placed}, nil
}
