package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "patriot-scheduler")
	require.NoError(t, err)

	claims := NewClaims("user-1", "DISPATCH", "tenant-1", "dispatch@shop.test",
		"patriot-scheduler", time.Hour, time.Now())

	raw, err := h.Sign(claims)
	require.NoError(t, err)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "DISPATCH", got.Role)
	require.Equal(t, "tenant-1", got.TenantID)
	require.Equal(t, "dispatch@shop.test", got.Email)
}

func TestSecretMustBeLongEnough(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("short"), "iss")
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "patriot-scheduler")
	require.NoError(t, err)

	claims := NewClaims("u", "TECH", "t", "", "patriot-scheduler",
		time.Minute, time.Now().Add(-2*time.Hour))
	raw, err := h.Sign(claims)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "patriot-scheduler")
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "patriot-scheduler")
	require.NoError(t, err)

	raw, err := signer.Sign(NewClaims("u", "TECH", "t", "", "patriot-scheduler", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret, "patriot-scheduler")
	require.NoError(t, err)

	raw, err := signer.Sign(NewClaims("u", "TECH", "t", "", "someone-else", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "patriot-scheduler")
	require.NoError(t, err)

	_, err = h.Verify("not.a.token")
	require.Error(t, err)
}
