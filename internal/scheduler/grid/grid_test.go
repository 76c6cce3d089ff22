package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSkeleton(t *testing.T) {
	t.Parallel()

	g, err := Build([]Resource{{ID: "t1", Name: "Ray"}, {ID: "t2", Name: "Sam"}}, refHours)
	require.NoError(t, err)

	require.Equal(t, 18, g.SlotCount)
	require.Len(t, g.RowLabels, 18)
	require.Equal(t, "08:00", g.RowLabels[0])
	require.Equal(t, "08:30", g.RowLabels[1])
	require.Equal(t, "16:30", g.RowLabels[17])

	// Column order is input order, no sorting.
	require.Equal(t, "t1", g.Columns[0].ID)
	require.Equal(t, "t2", g.Columns[1].ID)

	i, ok := g.Column("t2")
	require.True(t, ok)
	require.Equal(t, 1, i)

	_, ok = g.Column("t9")
	require.False(t, ok)
}

func TestBuildEmptyResourceListIsValid(t *testing.T) {
	t.Parallel()

	g, err := Build(nil, refHours)
	require.NoError(t, err)
	require.Empty(t, g.Columns)
	require.Equal(t, 18, g.SlotCount)
}

func TestBuildRejectsInvalidHours(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, BusinessHours{DayStartMinutes: 600, DayEndMinutes: 480, SlotMinutes: 30})
	require.ErrorIs(t, err, ErrInvalidHours)
}

func TestBuildPreservesCallerOrder(t *testing.T) {
	t.Parallel()

	// Deliberately unsorted names.
	in := []Resource{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	g, err := Build(in, refHours)
	require.NoError(t, err)
	require.Equal(t, in, g.Columns)
}
