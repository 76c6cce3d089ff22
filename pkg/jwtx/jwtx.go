// Package jwtx issues and verifies the scheduler's access tokens. Tokens are
// HS256-signed and carry the principal fields every request needs: subject
// (user id), role, and tenant id. The HTTP layer turns verified claims into
// a domain principal; nothing downstream ever touches the raw token.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
const DefaultAccessTokenTTL = 8 * time.Hour

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
)

// Claims are the scheduler's access-token claims. Additive changes only, to
// preserve compatibility with tokens already in the wild.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the principal's role name from the closed role set.
	Role string `json:"role,omitempty"`

	// TenantID scopes every downstream storage access.
	TenantID string `json:"tenant_id,omitempty"`

	// Email of the authenticated user, for display only.
	Email string `json:"email,omitempty"`
}

// NewClaims builds minimally-correct claims for a user.
func NewClaims(userID, role, tenantID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:     role,
		TenantID: tenantID,
		Email:    email,
	}
}

// Signer mints signed tokens for claims.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier validates a raw token and returns its claims if legitimate.
type Verifier interface {
	Verify(token string) (Claims, error)
}
