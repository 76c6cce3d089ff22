package sqlite

import (
	"context"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
)

type techniciansRepo struct {
	q querier
}

const technicianColumns = `id, tenant_id, name, skills, created_at, updated_at`

func scanTechnician(row interface{ Scan(...any) error }) (domain.Technician, error) {
	var t domain.Technician
	var skills string
	err := row.Scan(&t.ID, &t.TenantID, &t.Name, &skills, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Technician{}, err
	}
	t.Skills = splitFields(skills)
	return t, nil
}

func (r *techniciansRepo) CreateTechnician(ctx context.Context, t domain.Technician) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO technicians (id, tenant_id, name, skills) VALUES (?, ?, ?, ?)`,
		t.ID, t.TenantID, t.Name, joinFields(t.Skills),
	)
	return mapConstraint(err)
}

func (r *techniciansRepo) GetTechnicianByID(ctx context.Context, tenantID, id string) (domain.Technician, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+technicianColumns+` FROM technicians WHERE tenant_id = ? AND id = ?`,
		tenantID, id,
	)
	t, err := scanTechnician(row)
	if err != nil {
		return domain.Technician{}, mapNotFound(err)
	}
	return t, nil
}

func (r *techniciansRepo) ListTechnicians(ctx context.Context, tenantID string) ([]domain.Technician, error) {
	// Creation order; callers rely on this as the grid column order.
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+technicianColumns+` FROM technicians WHERE tenant_id = ? ORDER BY created_at, id`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techs []domain.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

func (r *techniciansRepo) DeleteTechnician(ctx context.Context, tenantID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM technicians WHERE tenant_id = ? AND id = ?`,
		tenantID, id,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
