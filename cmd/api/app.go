package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"daycast/internal/config"
	"daycast/internal/forecast"
	"daycast/internal/locale"
	"daycast/internal/metrics"
	"daycast/internal/providers/openmeteo"
	"daycast/internal/timezone"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

// App encapsulates application dependencies
type App struct {
	engine   *gin.Engine
	api      huma.API
	logger   *slog.Logger
	fetcher  *forecast.Fetcher
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// NewApp wires the forecast client, fetcher and metrics from configuration
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	labels, err := locale.New(cfg.App.Locale)
	if err != nil {
		return nil, err
	}

	client := openmeteo.NewForecastClient(
		openmeteo.WithBaseURL(cfg.Upstream.BaseURL),
		openmeteo.WithHTTPClient(&http.Client{
			Timeout:   cfg.Upstream.Timeout,
			Transport: appMetrics.InstrumentTransport(http.DefaultTransport),
		}),
	)

	var opts []forecast.Option
	if cfg.AnchorAtLocation() {
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		opts = append(opts, forecast.WithLocationAnchor(tzSvc))
	}

	fetcher := forecast.NewFetcher(client, labels, opts...)

	return newApp(logger, fetcher, reg, appMetrics), nil
}

func newApp(logger *slog.Logger, fetcher *forecast.Fetcher, reg *prometheus.Registry, appMetrics *metrics.Metrics) *App {
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		requestID(),
		observeRequests(appMetrics),
		logRequests(logger),
	)

	config := huma.DefaultConfig("Daycast API", "1.0.0")
	config.Info.Description = "Single-day weather summaries from the Open-Meteo forecast API"
	config.Servers = []*huma.Server{
		{URL: "http://localhost:8080", Description: "Development server"},
	}

	api := humagin.New(engine, config)
	apiDoc.set(api)

	app := &App{
		engine:   engine,
		api:      api,
		logger:   logger.With("component", "api"),
		fetcher:  fetcher,
		metrics:  appMetrics,
		registry: reg,
	}

	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		app.logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
