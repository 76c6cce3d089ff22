package grid

import (
	"context"
	"errors"
	"time"

	"github.com/patriotauto/scheduler/pkg/slogx"
)

// Skip reasons reported on PlacedGrid.Skipped.
const (
	SkipResourceNotFound = "resource-not-found"
	SkipOutOfRange       = "out-of-range"
)

// Block is one appointment laid onto the grid. SpanSlots lets a renderer
// compute its height as SpanSlots * rowHeight.
type Block struct {
	AppointmentID string
	Title         string
	Status        string
	Range         SlotRange
	SpanSlots     int
}

// SkippedAppointment records an appointment that could not be placed and
// why. Skips are a recovered outcome, never a failure of the whole build.
type SkippedAppointment struct {
	AppointmentID string
	Reason        string
}

// CellKey identifies one grid cell.
type CellKey struct {
	ResourceID string
	Slot       int
}

// PlacedGrid is the grid with appointment blocks laid in. Cells maps each
// occupied start cell to its blocks in insertion order; overlapping blocks
// in the same cell stack in that order. Double-bookings are not detected or
// rejected here.
type PlacedGrid struct {
	*Grid
	Cells   map[CellKey][]Block
	Skipped []SkippedAppointment
}

// PlacementInput is the minimal appointment view the engine needs.
type PlacementInput struct {
	ID         string
	Title      string
	Status     string
	ResourceID string
	Start      time.Time
	End        time.Time
}

// Place lays each appointment into the grid. An appointment whose resource
// is not a grid column (deleted tech, or stale data from an independently
// fetched list) or whose interval is entirely after hours is skipped: logged
// at debug, recorded on Skipped, and never fatal. Placement is a pure pass
// over its inputs; calling it twice with identical inputs yields identical
// output.
func Place(ctx context.Context, g *Grid, appointments []PlacementInput) *PlacedGrid {
	log := slogx.FromContext(ctx)

	placed := &PlacedGrid{
		Grid:  g,
		Cells: make(map[CellKey][]Block),
	}

	for _, appt := range appointments {
		if _, ok := g.Column(appt.ResourceID); !ok {
			log.Debug("placement skip: resource not on grid",
				"appointment_id", appt.ID, "resource_id", appt.ResourceID)
			placed.Skipped = append(placed.Skipped, SkippedAppointment{
				AppointmentID: appt.ID,
				Reason:        SkipResourceNotFound,
			})
			continue
		}

		r, err := MapInterval(appt.Start, appt.End, g.Hours)
		if err != nil {
			if errors.Is(err, ErrOutOfRange) {
				log.Debug("placement skip: interval outside business hours",
					"appointment_id", appt.ID)
				placed.Skipped = append(placed.Skipped, SkippedAppointment{
					AppointmentID: appt.ID,
					Reason:        SkipOutOfRange,
				})
			}
			continue
		}

		key := CellKey{ResourceID: appt.ResourceID, Slot: r.Start}
		placed.Cells[key] = append(placed.Cells[key], Block{
			AppointmentID: appt.ID,
			Title:         appt.Title,
			Status:        appt.Status,
			Range:         r,
			SpanSlots:     r.Span(),
		})
	}

	return placed
}
