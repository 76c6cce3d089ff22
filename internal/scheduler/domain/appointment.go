package domain

import "time"

// Appointment statuses. Free-form beyond this set is rejected at input
// validation; the default for new appointments is StatusScheduled.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// AppointmentStatuses is the accepted status set for input validation.
var AppointmentStatuses = []string{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

type Appointment struct {
	ID        string
	TenantID  string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	TechID    string
	ServiceID string // optional
	BayID     string // optional
	Status    string
	Source    string // where the booking came from (web, phone, walk-in)
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
