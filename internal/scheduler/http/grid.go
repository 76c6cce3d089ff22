package http

import (
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
)

type GridHandler struct {
	ScheduleService *service.ScheduleService
}

// ServeHTTP renders the day grid for one date.
//
//	@Summary		Get day grid
//	@Description	Builds the per-technician time-slot grid for one day: columns in technician order, rows per slot, appointments placed as blocks. Appointments that reference an unknown technician or fall entirely outside business hours are reported under "skipped" rather than failing the build.
//	@Tags			Grid
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string	true	"Day to render (YYYY-MM-DD)"
//	@Success		200		{object}	GridResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Invalid date"
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Router			/v1/grid [get].
func (h *GridHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	date := r.URL.Query().Get("date")
	if date == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_range", "date query parameter is required")
		return
	}

	day, err := h.ScheduleService.BuildDay(ctx, principal.TenantID, date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toGridResponse(day.Date, day.Placed))
}
