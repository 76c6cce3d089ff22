package http

import (
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/access"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP returns the authenticated principal and its permission set.
//
//	@Summary		Get current user
//	@Description	Returns the authenticated user's identity, role, tenant, and the permissions that role grants.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	UserInfoResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal := PrincipalFromContext(ctx)
	if principal == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing credentials")
		return
	}

	user, err := h.UserService.GetUserByID(ctx, principal.TenantID, principal.UserID)
	if err != nil {
		log.Warn("failed to load user", "user_id", principal.UserID, "err", err)
		writeServiceError(w, r, err)
		return
	}

	perms, err := access.PermissionsFor(principal.Role)
	if err != nil {
		log.Error("no permission set for role", "role", principal.Role.String())
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "internal server error")
		return
	}
	permNames := make([]string, len(perms))
	for i, p := range perms {
		permNames[i] = string(p)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, UserInfoResponse{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role.String(),
		TenantID:    user.TenantID,
		Permissions: permNames,
	})
}
