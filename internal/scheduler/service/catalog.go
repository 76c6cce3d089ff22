package service

import (
	"context"
	"strings"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/idx"
)

// CatalogService manages the tenant's service offerings. Required skills
// ride along as read-model data; nothing consults them when booking.
type CatalogService struct {
	Store store.Store
}

type CreateServiceInput struct {
	Name            string
	DurationMinutes int
	RequiredSkills  []string
}

func (s *CatalogService) ListServices(ctx context.Context, tenantID string) ([]domain.Service, error) {
	return s.Store.Services().ListServices(ctx, tenantID)
}

func (s *CatalogService) CreateService(ctx context.Context, tenantID string, in CreateServiceInput) (domain.Service, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Service{}, invalidf("name", "must not be empty")
	}
	if in.DurationMinutes <= 0 {
		return domain.Service{}, invalidf("duration_minutes", "must be positive")
	}

	svc := domain.Service{
		ID:              idx.New().String(),
		TenantID:        tenantID,
		Name:            strings.TrimSpace(in.Name),
		DurationMinutes: in.DurationMinutes,
		RequiredSkills:  in.RequiredSkills,
	}
	if err := s.Store.Services().CreateService(ctx, svc); err != nil {
		return domain.Service{}, err
	}
	return svc, nil
}
