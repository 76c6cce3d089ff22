package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/patriotauto/scheduler/internal/scheduler/http"
	"github.com/patriotauto/scheduler/internal/scheduler/metrics"
	"github.com/patriotauto/scheduler/internal/scheduler/service"
	"github.com/patriotauto/scheduler/internal/scheduler/store"
	"github.com/patriotauto/scheduler/internal/scheduler/store/drivers/sqlite"
	"github.com/patriotauto/scheduler/pkg/jwtx"
	"github.com/patriotauto/scheduler/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the scheduler service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.HS256

	authService        *service.AuthService
	userService        *service.UserService
	techService        *service.TechService
	catalogService     *service.CatalogService
	appointmentService *service.AppointmentService
	scheduleService    *service.ScheduleService
	bootstrapService   *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "scheduler",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	metrics.Register()

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run seeds the database if needed, starts the server, and blocks until
// shutdown is requested.
func (app *Application) Run() error {
	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.bootstrapService.EnsureBootstrapped(ctx); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	app.logger.Info("scheduler starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down scheduler...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("scheduler stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initSigner() error {
	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		// No configured secret: generate an ephemeral one. Tokens will not
		// survive a restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("failed to generate ephemeral JWT secret: %w", err)
		}
		secret = []byte(hex.EncodeToString(buf))
		app.logger.Warn("SCHED_JWT_SECRET not set; using an ephemeral signing secret")
	}

	signer, err := jwtx.NewHS256(secret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	return nil
}

func (app *Application) initServices() error {
	hours, err := app.cfg.BusinessHours()
	if err != nil {
		return fmt.Errorf("invalid business hours config: %w", err)
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.techService = &service.TechService{Store: app.db}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.appointmentService = &service.AppointmentService{Store: app.db}
	app.scheduleService = &service.ScheduleService{Store: app.db, Hours: hours}
	app.bootstrapService = &service.BootstrapService{
		Store:         app.db,
		TenantName:    app.cfg.TenantName,
		AdminEmail:    app.cfg.AdminEmail,
		AdminPassword: app.cfg.AdminPassword,
	}
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.cfg.TokenTTL,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.TechService = app.techService
	router.CatalogService = app.catalogService
	router.AppointmentService = app.appointmentService
	router.ScheduleService = app.scheduleService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
