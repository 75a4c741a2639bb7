package main

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
)

// otelProviders owns the SDK providers. With telemetry disabled every field
// is nil and the global no-op providers stay in place.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func initTelemetry(ctx context.Context, cfg *config.TelemetryConfig) (*otelProviders, error) {
	if !cfg.Enabled {
		return &otelProviders{}, nil
	}

	p := &otelProviders{}
	var err error
	if p.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("tracer: %w", err)
	}
	if p.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("meter: %w", err), p.Shutdown(ctx))
	}
	if p.metrics, err = telemetry.NewMetrics(p.meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(fmt.Errorf("instruments: %w", err), p.Shutdown(ctx))
	}
	return p, nil
}

// Shutdown flushes whichever providers were started.
func (p *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		errs = append(errs, p.tracer.Shutdown(ctx))
	}
	if p.meter != nil {
		errs = append(errs, p.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
