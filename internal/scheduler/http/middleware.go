package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/access"
	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/metrics"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/httpx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

type principalKey struct{}

// PrincipalFromContext returns the authenticated principal, or nil when the
// request never went through PrincipalMiddleware.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalKey{}).(*domain.Principal)
	return p
}

// PrincipalMiddleware converts verified token claims into a domain Principal
// and attaches it to the request context. It must run after
// httpx.AuthnMiddleware. A token carrying a role outside the closed role set
// is rejected outright rather than treated as permissionless.
func PrincipalMiddleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			claims, ok := httpx.ClaimsFromContext(ctx)
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing credentials")
				return
			}

			role, err := domain.ParseRole(claims.Role)
			if err != nil {
				log.Error("token carries unrecognised role",
					"user_id", claims.Subject, "role", claims.Role)
				httpx.WriteError(w, http.StatusUnauthorized, "invalid_token", "unrecognised role")
				return
			}

			principal := &domain.Principal{
				UserID:   claims.Subject,
				Role:     role,
				TenantID: claims.TenantID,
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, principalKey{}, principal)))
		})
	}
}

// RequirePermission gates a route on one capability-matrix permission. The
// check is pure and runs before the handler touches storage. A 403 names the
// caller's role and the permission that was required, and nothing else.
func RequirePermission(required access.Permission) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			err := access.Authorize(PrincipalFromContext(ctx), required)
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			var forbidden *access.ForbiddenError
			switch {
			case errors.Is(err, access.ErrUnauthenticated):
				httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing credentials")
			case errors.As(err, &forbidden):
				metrics.IncAuthzDenial()
				log.Warn("permission denied",
					"role", string(forbidden.Role), "required", string(forbidden.Required))
				httpx.WriteError(w, http.StatusForbidden, "forbidden",
					fmt.Sprintf("role %s lacks permission %s", forbidden.Role, forbidden.Required))
			default:
				log.Error("authorization check failed", "err", err)
				httpx.WriteError(w, http.StatusInternalServerError, "server_error", "authorization check failed")
			}
		})
	}
}

// writeServiceError maps service and store errors onto HTTP statuses. The
// fallback is a 500 with a generic body; internals never leak to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", verr.Error())
	case errors.Is(err, service.ErrInvalidRange), errors.Is(err, service.ErrInvalidDate):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_range", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusConflict, "conflict", "resource already exists")
	default:
		log.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal server error")
	}
}
