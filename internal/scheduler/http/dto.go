package http

import (
	"fmt"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/domain"
	"github.com/patriotauto/scheduler/internal/scheduler/grid"
)

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UserInfoResponse struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	TenantID    string   `json:"tenant_id"`
	Permissions []string `json:"permissions"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type TechnicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTechnicianRequest struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	RequiredSkills  []string `json:"required_skills"`
}

type CreateServiceRequest struct {
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	RequiredSkills  []string `json:"required_skills"`
}

type AppointmentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	TechID    string    `json:"tech_id"`
	ServiceID string    `json:"service_id,omitempty"`
	BayID     string    `json:"bay_id,omitempty"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateAppointmentRequest struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	TechID    string    `json:"tech_id"`
	ServiceID string    `json:"service_id,omitempty"`
	BayID     string    `json:"bay_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Source    string    `json:"source,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

// GridResponse is the rendered day schedule. Cells are flattened to a list
// because the natural map is keyed by (column, slot); blocks within a cell
// keep their stacking order.
type GridResponse struct {
	Date      string          `json:"date"`
	SlotCount int             `json:"slot_count"`
	RowLabels []string        `json:"row_labels"`
	Columns   []GridColumn    `json:"columns"`
	Cells     []GridCell      `json:"cells"`
	Skipped   []GridSkipped   `json:"skipped,omitempty"`
	Hours     GridHoursConfig `json:"hours"`
}

type GridHoursConfig struct {
	DayStart    string `json:"day_start"`
	DayEnd      string `json:"day_end"`
	SlotMinutes int    `json:"slot_minutes"`
}

type GridColumn struct {
	TechID string `json:"tech_id"`
	Name   string `json:"name"`
}

type GridCell struct {
	TechID string      `json:"tech_id"`
	Slot   int         `json:"slot"`
	Blocks []GridBlock `json:"blocks"`
}

type GridBlock struct {
	AppointmentID string `json:"appointment_id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	StartSlot     int    `json:"start_slot"`
	EndSlot       int    `json:"end_slot"`
	SpanSlots     int    `json:"span_slots"`
}

type GridSkipped struct {
	AppointmentID string `json:"appointment_id"`
	Reason        string `json:"reason"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		TenantID:  u.TenantID,
		CreatedAt: u.CreatedAt,
	}
}

func toTechnicianResponse(t domain.Technician) TechnicianResponse {
	return TechnicianResponse{ID: t.ID, Name: t.Name, Skills: t.Skills, CreatedAt: t.CreatedAt}
}

func toServiceResponse(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		RequiredSkills:  s.RequiredSkills,
	}
}

func toAppointmentResponse(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		TechID:    a.TechID,
		ServiceID: a.ServiceID,
		BayID:     a.BayID,
		Status:    a.Status,
		Source:    a.Source,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}
}

// toGridResponse walks columns then slots so the cell list is deterministic.
func toGridResponse(date string, placed *grid.PlacedGrid) GridResponse {
	resp := GridResponse{
		Date:      date,
		SlotCount: placed.SlotCount,
		RowLabels: placed.RowLabels,
		Columns:   make([]GridColumn, 0, len(placed.Columns)),
		Cells:     []GridCell{},
		Hours: GridHoursConfig{
			DayStart:    minutesToClock(placed.Hours.DayStartMinutes),
			DayEnd:      minutesToClock(placed.Hours.DayEndMinutes),
			SlotMinutes: placed.Hours.SlotMinutes,
		},
	}

	for _, col := range placed.Columns {
		resp.Columns = append(resp.Columns, GridColumn{TechID: col.ID, Name: col.Name})
		for slot := 0; slot < placed.SlotCount; slot++ {
			blocks, ok := placed.Cells[grid.CellKey{ResourceID: col.ID, Slot: slot}]
			if !ok {
				continue
			}
			cell := GridCell{TechID: col.ID, Slot: slot, Blocks: make([]GridBlock, 0, len(blocks))}
			for _, b := range blocks {
				cell.Blocks = append(cell.Blocks, GridBlock{
					AppointmentID: b.AppointmentID,
					Title:         b.Title,
					Status:        b.Status,
					StartSlot:     b.Range.Start,
					EndSlot:       b.Range.End,
					SpanSlots:     b.SpanSlots,
				})
			}
			resp.Cells = append(resp.Cells, cell)
		}
	}

	for _, sk := range placed.Skipped {
		resp.Skipped = append(resp.Skipped, GridSkipped{AppointmentID: sk.AppointmentID, Reason: sk.Reason})
	}
	return resp
}
