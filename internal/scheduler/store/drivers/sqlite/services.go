package sqlite

import (
	"context"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
)

type servicesRepo struct {
	q querier
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO services (id, tenant_id, name, duration_minutes, required_skills) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.TenantID, s.Name, s.DurationMinutes, joinFields(s.RequiredSkills),
	)
	return mapConstraint(err)
}

func (r *servicesRepo) ListServices(ctx context.Context, tenantID string) ([]domain.Service, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, tenant_id, name, duration_minutes, required_skills, created_at, updated_at
		 FROM services WHERE tenant_id = ? ORDER BY name, id`,
		tenantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		var skills string
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes, &skills, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.RequiredSkills = splitFields(skills)
		services = append(services, s)
	}
	return services, rows.Err()
}
