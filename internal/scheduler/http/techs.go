package http

import (
	"encoding/json"
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
)

type TechsHandler struct {
	TechService *service.TechService
}

// HandleList returns the tenant's technicians in grid column order.
//
//	@Summary		List technicians
//	@Description	Returns the shop's technicians in creation order, which is the order the day grid renders its columns.
//	@Tags			Technicians
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		TechnicianResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Router			/v1/techs [get].
func (h *TechsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	techs, err := h.TechService.ListTechnicians(ctx, principal.TenantID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]TechnicianResponse, 0, len(techs))
	for _, t := range techs {
		out = append(out, toTechnicianResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a technician to the shop.
//
//	@Summary		Create technician
//	@Tags			Technicians
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTechnicianRequest	true	"Technician"
//	@Success		201		{object}	TechnicianResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Router			/v1/techs [post].
func (h *TechsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	var req CreateTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "malformed JSON body")
		return
	}

	tech, err := h.TechService.CreateTechnician(ctx, principal.TenantID, service.CreateTechnicianInput{
		Name:   req.Name,
		Skills: req.Skills,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTechnicianResponse(tech))
}

// HandleDelete removes a technician. Their appointments go with them
// (cascade), so past bookings stop rendering on the grid.
//
//	@Summary		Delete technician
//	@Tags			Technicians
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Technician id"
//	@Success		204	"Deleted"
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/v1/techs/{id} [delete].
func (h *TechsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	if err := h.TechService.DeleteTechnician(ctx, principal.TenantID, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
