package service_test

import (
	"context"
	"testing"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/cryptox"
	"github.com/patriotauto/scheduler/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedTenant(t, s, "t1")

	hash, err := cryptox.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: "u1", TenantID: "t1", Email: "kim@shop.test", PasswordHash: hash, Role: domain.RoleDispatch,
	}))

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "scheduler-test")
	require.NoError(t, err)
	auth := &service.AuthService{Store: s, Signer: signer, Issuer: "scheduler-test"}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		token, user, err := auth.Login(ctx, "kim@shop.test", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, "u1", user.ID)

		claims, err := signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "u1", claims.Subject)
		require.Equal(t, "DISPATCH", claims.Role)
		require.Equal(t, "t1", claims.TenantID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "kim@shop.test", "nope")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "nobody@shop.test", "whatever")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
