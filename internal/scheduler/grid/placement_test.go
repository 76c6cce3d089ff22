package grid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceSingleAppointment(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "R1", Name: "Ray"}}, refHours)
	require.NoError(t, err)

	placed := Place(context.Background(), g, []PlacementInput{
		{ID: "a1", Title: "Oil change", Status: "scheduled", ResourceID: "R1", Start: at(9, 0), End: at(9, 30)},
	})

	require.Empty(t, placed.Skipped)
	require.Len(t, placed.Cells, 1)

	blocks := placed.Cells[CellKey{ResourceID: "R1", Slot: 2}]
	require.Len(t, blocks, 1)
	require.Equal(t, "a1", blocks[0].AppointmentID)
	require.Equal(t, 1, blocks[0].SpanSlots)
}

func TestPlaceSkipsUnknownResource(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "R1"}}, refHours)
	require.NoError(t, err)

	placed := Place(context.Background(), g, []PlacementInput{
		{ID: "a1", ResourceID: "R9", Start: at(9, 0), End: at(10, 0)},
	})

	require.Empty(t, placed.Cells)
	require.Len(t, placed.Skipped, 1)
	require.Equal(t, "a1", placed.Skipped[0].AppointmentID)
	require.Equal(t, SkipResourceNotFound, placed.Skipped[0].Reason)
}

func TestPlaceSkipsAfterHours(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "R1"}}, refHours)
	require.NoError(t, err)

	placed := Place(context.Background(), g, []PlacementInput{
		{ID: "late", ResourceID: "R1", Start: at(18, 0), End: at(19, 0)},
		{ID: "ok", ResourceID: "R1", Start: at(9, 0), End: at(9, 30)},
	})

	require.Len(t, placed.Skipped, 1)
	require.Equal(t, SkipOutOfRange, placed.Skipped[0].Reason)
	require.Len(t, placed.Cells, 1)
}

func TestPlaceStacksOverlapsInInsertionOrder(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "R1"}}, refHours)
	require.NoError(t, err)

	// Double-booked on purpose: the engine stacks, it does not reject.
	placed := Place(context.Background(), g, []PlacementInput{
		{ID: "first", ResourceID: "R1", Start: at(10, 0), End: at(11, 0)},
		{ID: "second", ResourceID: "R1", Start: at(10, 0), End: at(10, 30)},
	})

	blocks := placed.Cells[CellKey{ResourceID: "R1", Slot: 4}]
	require.Len(t, blocks, 2)
	require.Equal(t, "first", blocks[0].AppointmentID)
	require.Equal(t, "second", blocks[1].AppointmentID)
	require.Equal(t, 2, blocks[0].SpanSlots)
	require.Equal(t, 1, blocks[1].SpanSlots)
}

func TestPlaceIsIdempotent(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "R1"}, {ID: "R2"}}, refHours)
	require.NoError(t, err)

	appts := []PlacementInput{
		{ID: "a1", ResourceID: "R1", Start: at(9, 0), End: at(10, 0)},
		{ID: "a2", ResourceID: "R2", Start: at(7, 0), End: at(8, 15)},
		{ID: "a3", ResourceID: "R9", Start: at(9, 0), End: at(10, 0)},
	}

	first := Place(context.Background(), g, appts)
	second := Place(context.Background(), g, appts)

	require.Equal(t, first.Cells, second.Cells)
	require.Equal(t, first.Skipped, second.Skipped)
}
