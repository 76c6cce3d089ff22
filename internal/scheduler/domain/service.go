package domain

import "time"

// Service is a shop service offering (oil change, brake job, ...).
// RequiredSkills exists in storage for future dispatch tooling but is never
// consulted when placing appointments.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	DurationMinutes int
	RequiredSkills  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
