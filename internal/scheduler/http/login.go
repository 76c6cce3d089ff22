package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
	TokenTTL    time.Duration
}

// ServeHTTP handles email/password login.
//
//	@Summary		Log in
//	@Description	Exchanges an email/password pair for a bearer access token scoped to the user's shop and role.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse	"Access token and user"
//	@Failure		400		{object}	httpx.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	httpx.ErrorResponse	"Invalid credentials"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "malformed JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "email and password are required")
		return
	}

	token, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.TokenTTL.Seconds()),
		User:        toUserResponse(user),
	})
}
