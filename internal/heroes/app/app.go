package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/heroes/internal/heroes/http"
	"github.com/aussiebroadwan/heroes/internal/heroes/service"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/memory"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/sqlite"
	"github.com/aussiebroadwan/heroes/pkg/httpx"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the heroes API with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	registry *prometheus.Registry

	heroService *service.HeroService
	seedService *service.SeedService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "heroes-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if cfg.Seed {
		if err := app.seedService.Seed(context.Background()); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed heroes: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

// Serve listens on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (app *Application) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return app.serveListener(ctx, ln)
}

func (app *Application) serveListener(ctx context.Context, ln net.Listener) error {
	app.logger.Info("heroes service starting",
		"addr", ln.Addr().String(), "store", app.cfg.Store, "version", BuildVersion)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			app.logger.Info("shutdown requested", "cause", context.Cause(ctx))
		}

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down heroes service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil && !errors.Is(err, store.ErrClosed) {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("heroes service stopped")
	return nil
}

// initDatabase opens the configured hero store and applies migrations
func (app *Application) initDatabase() error {
	switch app.cfg.Store {
	case StoreSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	default:
		app.db = memory.NewStore()
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("hero store ready", "driver", app.cfg.Store)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.heroService = &service.HeroService{Store: app.db}
	app.seedService = &service.SeedService{Store: app.db, Logger: app.logger}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		httpx.NewMetrics("heroes", app.registry),
		app.logger,
	)
	router.HeroService = app.heroService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
