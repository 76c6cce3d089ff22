package service

import (
	"context"
	"log/slog"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/cryptox"
	"github.com/patriotauto/scheduler/pkg/idx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

// BootstrapService seeds an empty database with the first tenant and its
// admin user, from configuration. It runs once at startup and is a no-op on
// an already-populated database.
type BootstrapService struct {
	Store         store.Store
	TenantName    string
	AdminEmail    string
	AdminPassword string
}

func (s *BootstrapService) EnsureBootstrapped(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Tenants().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	if s.AdminEmail == "" || s.AdminPassword == "" {
		l.Warn("database is empty but no bootstrap admin is configured; nobody can log in")
		return nil
	}

	hash, err := cryptox.HashPassword(s.AdminPassword)
	if err != nil {
		return err
	}

	tenantID := idx.New().String()
	adminID := idx.New().String()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tenants().CreateTenant(ctx, domain.Tenant{
			ID:   tenantID,
			Name: s.TenantName,
		}); err != nil {
			return err
		}
		return tx.Users().CreateUser(ctx, domain.User{
			ID:           adminID,
			TenantID:     tenantID,
			Email:        s.AdminEmail,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		})
	})
	if err != nil {
		return err
	}

	l.Info("bootstrapped first tenant",
		slog.String("tenant_id", tenantID),
		slog.String("admin_user_id", adminID),
	)
	return nil
}
