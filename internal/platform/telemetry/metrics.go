package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrKind        = attribute.Key("kind")
	AttrPlatform    = attribute.Key("platform")
	AttrRuntime     = attribute.Key("runtime")
)

// Metrics are the instruments shared by the HTTP layers and the launcher.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// FilenameRejections is labelled with kind and platform.
	FilenameRejections metric.Int64Counter
	// JVMLaunches is labelled with result (exited or failed) and runtime.
	JVMLaunches metric.Int64Counter
	JVMExitCode metric.Int64Histogram
}

// NewMetrics registers every instrument on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(scope)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of inbound HTTP requests", "s"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Inbound HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of manifest host requests", "s"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Manifest host requests", "{request}"),
		FilenameRejections:    r.counter("launcher.filename.rejections", "Names rejected by filename validation", "{name}"),
		JVMLaunches:           r.counter("launcher.jvm.launches", "Finished JVM launches", "{launch}"),
	}
	exit, err := r.meter.Int64Histogram("launcher.jvm.exit_code", metric.WithDescription("Exit status of finished JVMs"))
	r.record("launcher.jvm.exit_code", err)
	m.JVMExitCode = exit

	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// registrar creates instruments and keeps every creation error.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) record(name string, err error) {
	if err != nil {
		r.err = errors.Join(r.err, fmt.Errorf("creating %s: %w", name, err))
	}
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.record(name, err)
	return c
}

func (r *registrar) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.record(name, err)
	return h
}
