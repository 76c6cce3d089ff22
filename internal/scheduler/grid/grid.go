package grid

// Resource is one bookable column on the grid (a technician or a bay).
type Resource struct {
	ID   string
	Name string
}

// Grid is the empty day skeleton: time-row labels crossed with resource
// columns. Column order is exactly the caller's input order; the builder
// never sorts.
type Grid struct {
	Hours     BusinessHours
	SlotCount int
	RowLabels []string
	Columns   []Resource

	// columnIndex resolves a resource ID to its column position.
	columnIndex map[string]int
}

// Build constructs the grid skeleton for a validated BusinessHours and an
// ordered resource list. An empty resource list is valid and yields a grid
// with zero columns; callers render "no resources" rather than failing.
func Build(resources []Resource, hours BusinessHours) (*Grid, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}

	slotCount := hours.SlotCount()
	labels := make([]string, slotCount)
	for i := range labels {
		labels[i] = hours.SlotLabel(i)
	}

	index := make(map[string]int, len(resources))
	for i, r := range resources {
		index[r.ID] = i
	}

	return &Grid{
		Hours:       hours,
		SlotCount:   slotCount,
		RowLabels:   labels,
		Columns:     resources,
		columnIndex: index,
	}, nil
}

// Column returns the column position for a resource ID.
func (g *Grid) Column(resourceID string) (int, bool) {
	i, ok := g.columnIndex[resourceID]
	return i, ok
}
