package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
)

type appointmentsRepo struct {
	q querier
}

const appointmentColumns = `id, tenant_id, title, start_time, end_time, technician_id,
	service_id, bay_id, status, source, created_by, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (domain.Appointment, error) {
	var a domain.Appointment
	var serviceID, bayID sql.NullString
	err := row.Scan(
		&a.ID, &a.TenantID, &a.Title, &a.StartTime, &a.EndTime, &a.TechID,
		&serviceID, &bayID, &a.Status, &a.Source, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Appointment{}, err
	}
	a.ServiceID = mapNullString(serviceID)
	a.BayID = mapNullString(bayID)
	return a, nil
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO appointments
		 (id, tenant_id, title, start_time, end_time, technician_id, service_id, bay_id, status, source, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.TenantID, a.Title, a.StartTime.UTC(), a.EndTime.UTC(), a.TechID,
		mapStringNull(a.ServiceID), mapStringNull(a.BayID), a.Status, a.Source, a.CreatedBy,
	)
	return mapConstraint(err)
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, tenantID, id string) (domain.Appointment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE tenant_id = ? AND id = ?`,
		tenantID, id,
	)
	a, err := scanAppointment(row)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appointmentsRepo) ListAppointmentsInRange(ctx context.Context, tenantID string, start, end time.Time) ([]domain.Appointment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE tenant_id = ? AND start_time >= ? AND start_time <= ?
		 ORDER BY start_time, id`,
		tenantID, start.UTC(), end.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *appointmentsRepo) UpdateAppointmentStatus(ctx context.Context, tenantID, id, status string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE appointments SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE tenant_id = ? AND id = ?`,
		status, tenantID, id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
