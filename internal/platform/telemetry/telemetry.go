// Package telemetry wires OpenTelemetry tracing and metrics for the
// launcher service. Development profiles export to stdout; production
// exports over OTLP/HTTP.
//
//	tp, err := telemetry.InitTracer(ctx, "shard-launcher-service", cfg.Exporter, cfg.Endpoint)
//	defer tp.Shutdown(ctx)
//	mp, err := telemetry.InitMeter(ctx, "shard-launcher-service", cfg.Exporter, cfg.Endpoint)
//	metrics, err := telemetry.NewMetrics(mp, "shard-launcher-service")
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// InitTracer installs a batching TracerProvider and the W3C trace context
// and baggage propagators as the globals. The caller shuts it down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExporterOTLP:
		var target otlpTarget
		if target, err = parseOTLPEndpoint(endpoint); err == nil {
			opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.hostPort)}
			if target.insecure {
				opts = append(opts, otlptracehttp.WithInsecure())
			}
			exp, err = otlptracehttp.New(ctx, opts...)
		}
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a periodically exporting MeterProvider as the global.
// The caller shuts it down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	switch exporter {
	case ExporterStdout:
		exp, err = stdoutmetric.New()
	case ExporterOTLP:
		var target otlpTarget
		if target, err = parseOTLPEndpoint(endpoint); err == nil {
			opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.hostPort)}
			if target.insecure {
				opts = append(opts, otlpmetrichttp.WithInsecure())
			}
			exp, err = otlpmetrichttp.New(ctx, opts...)
		}
	default:
		err = fmt.Errorf("unsupported exporter %q", exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}
	return res, nil
}

type otlpTarget struct {
	hostPort string
	insecure bool
}

// parseOTLPEndpoint accepts "http://collector:4318" style URLs as well as a
// bare "collector:4318". Anything but https is sent in the clear.
func parseOTLPEndpoint(endpoint string) (otlpTarget, error) {
	if endpoint == "" {
		return otlpTarget{}, errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return otlpTarget{hostPort: endpoint, insecure: true}, nil
	}
	return otlpTarget{hostPort: u.Host, insecure: u.Scheme != "https"}, nil
}
