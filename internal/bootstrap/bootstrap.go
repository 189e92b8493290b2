// Package bootstrap wires the application's dependency graph with samber/do.
// The HTTP server and the CLI share it so both shells drive the same
// documentation service built from the same configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	adapthttp "github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/app"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/health"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/httpclient"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/logging"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/telemetry"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/ports"
)

// Container owns the DI root scope and the telemetry providers.
type Container struct {
	injector *do.RootScope
	otel     *otelProviders

	Config *config.Config
	Logger *slog.Logger
}

// New loads configuration for profile, builds the logger (writing to
// logOut) and telemetry, and registers every provider. Nothing beyond
// config, logger and telemetry is constructed until first resolved.
func New(ctx context.Context, profile string, logOut io.Writer, opts ...config.Option) (*Container, error) {
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	return &Container{
		injector: injector,
		otel:     otel,
		Config:   cfg,
		Logger:   logger,
	}, nil
}

// DocumentationService resolves the documentation service and its model
// client.
func (c *Container) DocumentationService() (ports.DocumentationService, error) {
	svc, err := do.Invoke[ports.DocumentationService](c.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving documentation service: %w", err)
	}
	return svc, nil
}

// ModelCatalog resolves the provider model listing.
func (c *Container) ModelCatalog() (ports.ModelCatalog, error) {
	catalog, err := do.Invoke[ports.ModelCatalog](c.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving model catalog: %w", err)
	}
	return catalog, nil
}

// Server resolves the HTTP server, which eagerly wires the full graph.
func (c *Container) Server() (*adapthttp.Server, error) {
	server, err := do.Invoke[*adapthttp.Server](c.injector)
	if err != nil {
		return nil, fmt.Errorf("resolving server: %w", err)
	}
	return server, nil
}

// Shutdown flushes telemetry. Nil-safe.
func (c *Container) Shutdown(ctx context.Context) error {
	if c == nil || c.otel == nil {
		return nil
	}
	return c.otel.Shutdown(ctx)
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, acl.ServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ModelClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return acl.NewModelClient(client, &cfg.LLM, metrics, logger)
	})

	// One adapter serves both ports.
	do.Provide(injector, func(i do.Injector) (ports.ModelClient, error) {
		model, err := do.Invoke[*acl.ModelClient](i)
		if err != nil {
			return nil, err
		}
		return model, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ModelCatalog, error) {
		model, err := do.Invoke[*acl.ModelClient](i)
		if err != nil {
			return nil, err
		}
		return model, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		// The model client is the only downstream; its breaker drives readiness.
		if checker, ok := do.MustInvoke[ports.ModelClient](i).(ports.HealthChecker); ok {
			registry.Register(checker)
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentationService, error) {
		model := do.MustInvoke[ports.ModelClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		svc, err := app.NewDocumentationService(model, metrics, cfg.Pipeline.MaxWorkers, logger)
		if err != nil {
			return nil, err
		}
		return svc, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DocumentationHandler, error) {
		svc := do.MustInvoke[ports.DocumentationService](i)
		return handlers.NewDocumentationHandler(svc, clinical.ParseSpecialty(cfg.Agents.DefaultSpecialty)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		docH := do.MustInvoke[*handlers.DocumentationHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(docH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
