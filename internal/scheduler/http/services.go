package http

import (
	"encoding/json"
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
)

type ServicesHandler struct {
	CatalogService *service.CatalogService
}

// HandleList returns the shop's service offerings.
//
//	@Summary		List services
//	@Description	Returns the shop's service catalog. Required skills are informational; bookings are not matched against them.
//	@Tags			Services
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		ServiceResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Router			/v1/services [get].
func (h *ServicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	services, err := h.CatalogService.ListServices(ctx, principal.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a service offering.
//
//	@Summary		Create service
//	@Tags			Services
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateServiceRequest	true	"Service"
//	@Success		201		{object}	ServiceResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Router			/v1/services [post].
func (h *ServicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "malformed JSON body")
		return
	}

	svc, err := h.CatalogService.CreateService(ctx, principal.TenantID, service.CreateServiceInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		RequiredSkills:  req.RequiredSkills,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toServiceResponse(svc))
}
