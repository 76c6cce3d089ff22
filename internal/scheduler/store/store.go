package store

import (
	"context"
	"errors"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface, implemented by concrete drivers
// (sqlite today). It exposes sub-repositories to keep concerns tidy and
// testable.
//
// Tenant isolation is structural: every read on tenant-owned data takes the
// tenant id as an explicit parameter, so omitting the filter is a compile
// error rather than a runtime data leak. The single exception is
// GetUserByEmail, which runs before authentication has resolved a tenant.
type Store interface {
	Tenants() Tenants
	Users() Users
	Technicians() Technicians
	Services() Services
	Appointments() Appointments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil error and
	// rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Tenants interface {
	CreateTenant(ctx context.Context, t domain.Tenant) error
	GetTenantByID(ctx context.Context, id string) (domain.Tenant, error)

	// IsEmpty reports whether any tenant exists; used for first-run bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, tenantID, id string) (domain.User, error)

	// GetUserByEmail is used during login, before a tenant is known; the
	// returned row carries the tenant the principal will be scoped to.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	ListUsers(ctx context.Context, tenantID string) ([]domain.User, error)
	DeleteUser(ctx context.Context, tenantID, id string) error
}

type Technicians interface {
	CreateTechnician(ctx context.Context, t domain.Technician) error
	GetTechnicianByID(ctx context.Context, tenantID, id string) (domain.Technician, error)

	// ListTechnicians returns the tenant's technicians in creation order;
	// this order becomes the grid's column order.
	ListTechnicians(ctx context.Context, tenantID string) ([]domain.Technician, error)
	DeleteTechnician(ctx context.Context, tenantID, id string) error
}

type Services interface {
	CreateService(ctx context.Context, s domain.Service) error
	ListServices(ctx context.Context, tenantID string) ([]domain.Service, error)
}

type Appointments interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) error
	GetAppointmentByID(ctx context.Context, tenantID, id string) (domain.Appointment, error)

	// ListAppointmentsInRange returns appointments whose start time falls
	// within [start, end], tenant filtered, ordered by start time then id.
	// The ordering is what makes grid stacking deterministic.
	ListAppointmentsInRange(ctx context.Context, tenantID string, start, end time.Time) ([]domain.Appointment, error)

	UpdateAppointmentStatus(ctx context.Context, tenantID, id, status string) error
}
