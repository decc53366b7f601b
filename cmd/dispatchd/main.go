package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/dispatch/core/dispatcher"
	"github.com/dmitrymomot/dispatch/core/health"
	"github.com/dmitrymomot/dispatch/core/logger"
	"github.com/dmitrymomot/dispatch/core/metrics"
	"github.com/dmitrymomot/dispatch/core/registry"
	"github.com/dmitrymomot/dispatch/core/server"
)

const meterName = "github.com/dmitrymomot/dispatch"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg appConfig) *slog.Logger {
	if cfg.production() {
		return logger.New(logger.WithProduction(cfg.AppName), logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName), logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	exporter, err := otelprom.New(otelprom.WithRegisterer(promRegistry))
	if err != nil {
		return err
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Warn("meter provider shutdown failed", logger.Error(err))
		}
	}()

	collector, err := metrics.New(provider.Meter(meterName))
	if err != nil {
		return err
	}

	mux, err := newHandler(cfg, log, collector, promRegistry)
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, mux))
	return g.Wait()
}

var errNoRoutes = errors.New("no routes registered")

// newHandler wires the dispatcher at "/" next to the metrics and liveness endpoints.
func newHandler(cfg appConfig, log *slog.Logger, collector *metrics.Collector, gatherer prometheus.Gatherer) (http.Handler, error) {
	svc := &service{}
	reg, err := registry.New(
		registry.WithLogger(log.With(logger.Component("registry"))),
		registry.WithRoutable(svc),
	)
	if err != nil {
		return nil, err
	}
	svc.routes = reg.Routes

	for _, r := range reg.Routes() {
		log.Info("route registered",
			logger.Method(r.Method),
			logger.Route(r.Name),
			slog.String("shape", r.Shape.String()),
		)
	}

	d := dispatcher.New(reg,
		dispatcher.WithLogger(log.With(logger.Component("dispatcher"))),
		dispatcher.WithMetrics(collector),
	)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Method(http.MethodGet, cfg.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Method(http.MethodGet, "/health/live", health.Liveness())
	router.Method(http.MethodGet, "/health/ready", health.Readiness(log, func(context.Context) error {
		if reg.Len() == 0 {
			return errNoRoutes
		}
		return nil
	}))
	router.Handle("/*", d)
	return router, nil
}
