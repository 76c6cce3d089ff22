package service

import (
	"context"
	"strings"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/cryptox"
	"github.com/patriotauto/scheduler/pkg/idx"
)

type UserService struct {
	Store store.Store
}

type CreateUserInput struct {
	Email    string
	Password string
	Role     string
}

func (s *UserService) GetUserByID(ctx context.Context, tenantID, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, tenantID, id)
}

func (s *UserService) ListUsers(ctx context.Context, tenantID string) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx, tenantID)
}

// CreateUser creates a tenant user with a recognised role. The role string
// is validated against the closed role set before anything is written.
func (s *UserService) CreateUser(ctx context.Context, tenantID string, in CreateUserInput) (domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return domain.User{}, invalidf("email", "must not be empty")
	}
	if len(in.Password) < 8 {
		return domain.User{}, invalidf("password", "must be at least 8 characters")
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return domain.User{}, invalidf("role", err.Error())
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		TenantID:     tenantID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, tenantID, id string) error {
	return s.Store.Users().DeleteUser(ctx, tenantID, id)
}
