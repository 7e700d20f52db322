package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/biztime/internal/config"
	"github.com/abrezinsky/biztime/internal/handlers"
	"github.com/abrezinsky/biztime/internal/logger"
	"github.com/abrezinsky/biztime/internal/repository"
	"github.com/abrezinsky/biztime/internal/services"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	cfg      *config.Config
	handlers *handlers.Handlers
	repo     *repository.Repository
	seed     *services.SeedService
}

// New opens the store and wires services and handlers
func New(log logger.Logger, cfg *config.Config) (*App, error) {
	repo, err := repository.New(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize services
	companyService := services.NewCompanyService(log, repo)
	invoiceService := services.NewInvoiceService(log, repo)
	healthService := services.NewHealthService(log, repo)
	seedService := services.NewSeedService(log, companyService, invoiceService)

	h := handlers.New(
		companyService,
		invoiceService,
		healthService,
		log,
		cfg.Server.RequestTimeout,
	)

	return &App{
		log:      log,
		cfg:      cfg,
		handlers: h,
		repo:     repo,
		seed:     seedService,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Seed loads the sample dataset
func (a *App) Seed(ctx context.Context) (services.SeedResult, error) {
	return a.seed.Seed(ctx)
}

// Close releases the database
func (a *App) Close() error {
	return a.repo.Close()
}

// Run serves HTTP on the configured address until ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.cfg.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves HTTP on ln until ctx is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: a.cfg.Server.RequestTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("Server starting", "addr", ln.Addr().String())
		serverErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("Server shutting down", "timeout", a.cfg.Server.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info("Server stopped")
	return nil
}
