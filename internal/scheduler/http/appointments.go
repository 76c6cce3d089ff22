package http

import (
	"encoding/json"
	"net/http"

	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/pkg/httpx"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

// HandleList returns appointments within an inclusive calendar-date range.
//
//	@Summary		List appointments
//	@Description	Returns the shop's appointments whose start time falls within the inclusive date range [start, end].
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start	query		string	true	"Range start date (YYYY-MM-DD)"
//	@Param			end		query		string	true	"Range end date (YYYY-MM-DD), inclusive"
//	@Success		200		{array}		AppointmentResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Invalid range"
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Router			/v1/appointments [get].
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_range", "start and end query parameters are required")
		return
	}

	appts, err := h.AppointmentService.ListRange(ctx, principal.TenantID, start, end)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet returns one appointment by id.
//
//	@Summary		Get appointment
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Appointment id"
//	@Success		200	{object}	AppointmentResponse
//	@Failure		403	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/v1/appointments/{id} [get].
func (h *AppointmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	appt, err := h.AppointmentService.GetAppointmentByID(ctx, principal.TenantID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

// HandleUpdateStatus moves an appointment through its status set.
//
//	@Summary		Update appointment status
//	@Description	Sets the appointment's status to one of scheduled, in-progress, completed, or cancelled.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Appointment id"
//	@Param			request	body		UpdateAppointmentStatusRequest	true	"New status"
//	@Success		200		{object}	AppointmentResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Unknown status"
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Router			/v1/appointments/{id}/status [patch].
func (h *AppointmentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)
	id := r.PathValue("id")

	var req UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "malformed JSON body")
		return
	}

	if err := h.AppointmentService.UpdateStatus(ctx, principal.TenantID, id, req.Status); err != nil {
		writeServiceError(w, r, err)
		return
	}

	appt, err := h.AppointmentService.GetAppointmentByID(ctx, principal.TenantID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAppointmentResponse(appt))
}

// HandleCreate books an appointment.
//
//	@Summary		Create appointment
//	@Description	Books an appointment for a technician. Overlaps are not rejected; the grid stacks concurrent bookings.
//	@Tags			Appointments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateAppointmentRequest	true	"Appointment"
//	@Success		201		{object}	AppointmentResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		403		{object}	httpx.ErrorResponse
//	@Router			/v1/appointments [post].
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := PrincipalFromContext(ctx)

	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_input", "malformed JSON body")
		return
	}

	appt, err := h.AppointmentService.Create(ctx, principal.TenantID, principal.UserID, service.CreateAppointmentInput{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		TechID:    req.TechID,
		ServiceID: req.ServiceID,
		BayID:     req.BayID,
		Status:    req.Status,
		Source:    req.Source,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAppointmentResponse(appt))
}
