package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/patriotauto/scheduler/internal/scheduler/access"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/pkg/httpx"
	"github.com/patriotauto/scheduler/pkg/jwtx"
	"github.com/patriotauto/scheduler/pkg/slogx"

	_ "github.com/patriotauto/scheduler/api/scheduler" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	tokenTTL     time.Duration

	store              store.Store
	AuthService        *service.AuthService
	UserService        *service.UserService
	TechService        *service.TechService
	CatalogService     *service.CatalogService
	AppointmentService *service.AppointmentService
	ScheduleService    *service.ScheduleService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	tokenTTL time.Duration,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		tokenTTL:     tokenTTL,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTechs()
	r.registerServices()
	r.registerAppointments()
	r.registerGrid()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Patriot Scheduler API
//	@version		0.1.0
//	@description	Appointment scheduling for multi-tenant auto-repair shops with a per-day technician time-slot grid.
//	@description
//	@description				Every tenant-scoped route requires a bearer token and is gated by the caller's role.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a tenant-scoped handler with the standard chain: token
// verification, principal resolution, the permission gate, then a per-user
// rate limit.
func (r *Router) secured(h http.Handler, perm access.Permission, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		PrincipalMiddleware(),
		RequirePermission(perm),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService, TokenTTL: r.tokenTTL}
	r.Mux.Handle("POST /v1/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /userinfo - authenticated, no specific permission
	userinfoHandler := &UserInfoHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userinfoHandler,
			httpx.AuthnMiddleware(r.verifier),
			PrincipalMiddleware(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerTechs() {
	h := &TechsHandler{TechService: r.TechService}

	r.Mux.Handle("GET /v1/techs",
		r.secured(http.HandlerFunc(h.HandleList), access.PermViewScheduler, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/techs",
		r.secured(http.HandlerFunc(h.HandleCreate), access.PermManageTechs, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/techs/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), access.PermManageTechs, httpx.ModerateLimit))
}

func (r *Router) registerServices() {
	h := &ServicesHandler{CatalogService: r.CatalogService}

	r.Mux.Handle("GET /v1/services",
		r.secured(http.HandlerFunc(h.HandleList), access.PermViewScheduler, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/services",
		r.secured(http.HandlerFunc(h.HandleCreate), access.PermManageTechs, httpx.ModerateLimit))
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{AppointmentService: r.AppointmentService}

	r.Mux.Handle("GET /v1/appointments",
		r.secured(http.HandlerFunc(h.HandleList), access.PermViewScheduler, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/appointments/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), access.PermViewScheduler, httpx.LenientLimit))
	r.Mux.Handle("POST /v1/appointments",
		r.secured(http.HandlerFunc(h.HandleCreate), access.PermCreateAppointment, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/appointments/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateStatus), access.PermEditAppointment, httpx.ModerateLimit))
}

func (r *Router) registerGrid() {
	h := &GridHandler{ScheduleService: r.ScheduleService}

	r.Mux.Handle("GET /v1/grid",
		r.secured(h, access.PermViewScheduler, httpx.LenientLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users",
		r.secured(http.HandlerFunc(h.HandleList), access.PermManageUsers, httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/users",
		r.secured(http.HandlerFunc(h.HandleCreate), access.PermManageUsers, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), access.PermManageUsers, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health endpoints - lenient limits, monitoring systems poll these
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
