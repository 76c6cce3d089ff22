package domain

import "time"

// Technician is a bookable resource: one column on the day grid. Skills are
// read-model data only; no skill/service matching happens in this service.
type Technician struct {
	ID        string
	TenantID  string
	Name      string
	Skills    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
