package service

import (
	"context"
	"strings"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/idx"
)

type TechService struct {
	Store store.Store
}

type CreateTechnicianInput struct {
	Name   string
	Skills []string
}

// ListTechnicians returns the tenant's technicians in creation order, which
// is the column order the day grid renders them in.
func (s *TechService) ListTechnicians(ctx context.Context, tenantID string) ([]domain.Technician, error) {
	return s.Store.Technicians().ListTechnicians(ctx, tenantID)
}

func (s *TechService) GetTechnicianByID(ctx context.Context, tenantID, id string) (domain.Technician, error) {
	return s.Store.Technicians().GetTechnicianByID(ctx, tenantID, id)
}

func (s *TechService) CreateTechnician(ctx context.Context, tenantID string, in CreateTechnicianInput) (domain.Technician, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Technician{}, invalidf("name", "must not be empty")
	}

	tech := domain.Technician{
		ID:       idx.New().String(),
		TenantID: tenantID,
		Name:     strings.TrimSpace(in.Name),
		Skills:   in.Skills,
	}
	if err := s.Store.Technicians().CreateTechnician(ctx, tech); err != nil {
		return domain.Technician{}, err
	}
	return tech, nil
}

func (s *TechService) DeleteTechnician(ctx context.Context, tenantID, id string) error {
	return s.Store.Technicians().DeleteTechnician(ctx, tenantID, id)
}
