package access

import (
	"errors"
	"fmt"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
)

// ErrUnauthenticated means no principal was presented at all. It is a
// distinct outcome from a Forbidden denial and maps to HTTP 401.
var ErrUnauthenticated = errors.New("access: not authenticated")

// ForbiddenError is returned when an authenticated principal's role lacks
// the required permission. It carries the role and required permission for
// diagnostics; it never carries data belonging to any tenant.
type ForbiddenError struct {
	Role     domain.Role
	Required Permission
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access: role %s lacks permission %s", e.Role, e.Required)
}

// Authorize decides allow/deny for a principal against a required permission.
// It is deterministic, has no side effects, and must run before the caller
// touches storage. Tenant isolation is deliberately not enforced here: the
// caller's contract is to pass principal.TenantID into every store call.
func Authorize(principal *domain.Principal, required Permission) error {
	if principal == nil {
		return ErrUnauthenticated
	}

	ok, err := HasPermission(principal.Role, required)
	if err != nil {
		// Unknown role on a stored principal. Deny rather than guess.
		return err
	}
	if !ok {
		return &ForbiddenError{Role: principal.Role, Required: required}
	}
	return nil
}
