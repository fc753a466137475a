// Package metrics holds the shared Prometheus and OpenTelemetry plumbing.
// OpenTelemetry instruments created from the provider returned by
// NewMeterProvider are exported through the same Prometheus registry that
// serves the native collectors.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider returns an OpenTelemetry meter provider whose readings are
// exposed by reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel prometheus exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewRequestDuration registers and returns the HTTP latency histogram,
// labelled by route pattern, method and status code.
func NewRequestDuration(reg prometheus.Registerer) (*prometheus.HistogramVec, error) {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "guide",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by route, method and status code.",
		Buckets:   DefaultBuckets,
	}, []string{"route", "method", "code"})

	if err := reg.Register(hist); err != nil {
		return nil, fmt.Errorf("could not register request duration histogram: %w", err)
	}

	return hist, nil
}
