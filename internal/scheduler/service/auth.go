package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/metrics"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/cryptox"
	"github.com/patriotauto/scheduler/pkg/jwtx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Login verifies the email/password pair and mints an access token carrying
// the user's role and tenant. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.IncLogin("failure")
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Warn("failed login attempt", slog.String("user_id", user.ID))
		metrics.IncLogin("failure")
		return "", domain.User{}, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewClaims(user.ID, user.Role.String(), user.TenantID, user.Email, s.Issuer, ttl, time.Now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.User{}, err
	}

	metrics.IncLogin("success")
	l.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("tenant_id", user.TenantID),
	)
	return token, user, nil
}
