package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"workplace-geo/internal/config"
	"workplace-geo/internal/location"
	"workplace-geo/internal/metrics"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	locationService location.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	locationSvc, err := location.NewLocationService(ctx, cfg, logger,
		location.WithMetrics(metrics.NewResolver(prometheus.DefaultRegisterer)),
	)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, logger, locationSvc, prometheus.DefaultRegisterer), nil
}

func newApp(cfg *config.Config, logger *slog.Logger, locationSvc location.Service, reg prometheus.Registerer) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(
		gin.Recovery(),
		requestID(),
		accessLog(logger),
		metrics.NewHTTP(reg).Middleware(),
	)

	app := &App{
		router:          router,
		logger:          logger,
		locationService: locationSvc,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests and
// releases the location service
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		_ = app.locationService.Close()
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server", "timeout", app.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return app.locationService.Close()
}
