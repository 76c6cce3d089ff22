package domain

import "time"

// Tenant is an isolated shop/organization. Every other entity hangs off a
// tenant and must never be visible across tenants.
type Tenant struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
