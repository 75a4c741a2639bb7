package telemetry_test

import (
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
)

const service = "shard-launcher-service"

// InitTracer and InitMeter replace process globals, so the successful
// cases are not parallel.
func TestInit_Exporters(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp url", exporter: telemetry.ExporterOTLP, endpoint: "http://otel-collector:4318"},
		{name: "otlp https", exporter: telemetry.ExporterOTLP, endpoint: "https://otel.example.com"},
		{name: "otlp bare host", exporter: telemetry.ExporterOTLP, endpoint: "otel-collector:4318"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(t.Context(), service, tt.exporter, tt.endpoint)
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so flushing may fail.
			t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

			mp, err := telemetry.InitMeter(t.Context(), service, tt.exporter, tt.endpoint)
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

			fields := otel.GetTextMapPropagator().Fields()
			if !slices.Contains(fields, "traceparent") || !slices.Contains(fields, "baggage") {
				t.Errorf("propagator fields = %v, want traceparent and baggage", fields)
			}
		})
	}
}

func TestInit_RejectsBadExporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
	}{
		{name: "unknown exporter", exporter: "zipkin"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := telemetry.InitTracer(t.Context(), service, tt.exporter, tt.endpoint); err == nil {
				t.Error("InitTracer() error = nil")
			}
			if _, err := telemetry.InitMeter(t.Context(), service, tt.exporter, tt.endpoint); err == nil {
				t.Error("InitMeter() error = nil")
			}
		})
	}
}

func TestNewMetrics_RecordsLaunches(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	m, err := telemetry.NewMetrics(mp, service)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	attrs := metric.WithAttributes(
		telemetry.AttrResult.String("exited"),
		telemetry.AttrRuntime.String("jre-17"),
	)
	m.JVMLaunches.Add(t.Context(), 1, attrs)
	m.JVMLaunches.Add(t.Context(), 1, attrs)
	m.JVMExitCode.Record(t.Context(), 0)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var launches int64
	var sawExitCode bool
	for _, sm := range rm.ScopeMetrics {
		for _, rec := range sm.Metrics {
			switch rec.Name {
			case "launcher.jvm.launches":
				sum, ok := rec.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("launches data = %T, want Sum[int64]", rec.Data)
				}
				for _, dp := range sum.DataPoints {
					launches += dp.Value
				}
			case "launcher.jvm.exit_code":
				sawExitCode = true
			}
		}
	}
	if launches != 2 {
		t.Errorf("launcher.jvm.launches = %d, want 2", launches)
	}
	if !sawExitCode {
		t.Error("launcher.jvm.exit_code not collected")
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), service)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	if m.FilenameRejections == nil || m.JVMLaunches == nil || m.ServerRequestTotal == nil {
		t.Errorf("NewMetrics() left instruments unset: %+v", m)
	}
}
