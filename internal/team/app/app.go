package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/gridline/crewhub/internal/team/http"
	"github.com/gridline/crewhub/internal/team/notify"
	"github.com/gridline/crewhub/internal/team/service"
	"github.com/gridline/crewhub/internal/team/store"
	"github.com/gridline/crewhub/internal/team/store/drivers/sqlite"
	"github.com/gridline/crewhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the team service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	notifier notify.Notifier

	// Services
	projectService      *service.ProjectService
	invitationService   *service.InvitationService
	membershipService   *service.MembershipService
	crewService         *service.CrewService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "team-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initNotifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("team service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down team service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("team service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

// initNotifier picks the invitation mail transport. Falls back to structured
// logging when SMTP settings are incomplete, which keeps local development
// working without a mail server.
func (app *Application) initNotifier() error {
	smtp := notify.SMTPConfig{
		Host:      app.cfg.SMTPHost,
		Port:      app.cfg.SMTPPort,
		Username:  app.cfg.SMTPUsername,
		Password:  app.cfg.SMTPPassword,
		FromName:  app.cfg.SMTPFromName,
		FromEmail: app.cfg.SMTPFromEmail,
		AcceptURL: app.cfg.InviteBaseURL,
	}

	if !smtp.Configured() {
		app.logger.Info("smtp not configured, invitation mail will be logged only")
		app.notifier = notify.LogNotifier{}
		return nil
	}

	mailer, err := notify.NewSMTPNotifier(smtp)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}
	app.logger.Info("smtp mailer enabled", "host", smtp.Host, "from", smtp.FromEmail)
	app.notifier = mailer
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.projectService = &service.ProjectService{Store: app.db}
	app.invitationService = &service.InvitationService{
		Store: app.db,
		TTL:   app.cfg.InvitationTTL,
	}
	app.membershipService = &service.MembershipService{
		Store:       app.db,
		Invitations: app.invitationService,
		Notifier:    app.notifier,
	}
	app.crewService = &service.CrewService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db.Invitations(),
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.ProjectService = app.projectService
	router.MembershipService = app.membershipService
	router.CrewService = app.crewService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
