// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware used by the guide app screens.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"

	"tunisiaguide/internal/api/handler/v1handler"
	"tunisiaguide/internal/config"
	"tunisiaguide/pkg/controller"
	"tunisiaguide/pkg/metrics"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options are the listener settings and metric sinks of the guide API.
// Zero durations leave the net/http defaults in place.
type Options struct {
	Addr string

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds one request through http.TimeoutHandler. Keep it
	// above the session delay or every sign-in times out.
	RequestTimeout time.Duration
	MaxHeaderBytes int

	// MetricsPath serves Gatherer in the prometheus text format.
	MetricsPath string
	// Registerer receives the per-route latency histogram.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewOptions maps the HTTP section of cfg onto Options, using the default
// prometheus registry for metrics.
func NewOptions(cfg *config.Config) Options {
	h := cfg.HTTP

	return Options{
		Addr:              h.Addr,
		ReadTimeout:       h.ReadTimeout,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		WriteTimeout:      h.WriteTimeout,
		IdleTimeout:       h.IdleTimeout,
		RequestTimeout:    h.RequestTimeout,
		MaxHeaderBytes:    h.MaxHeaderBytes,
		MetricsPath:       h.MetricsPath,
		Registerer:        prometheus.DefaultRegisterer,
		Gatherer:          prometheus.DefaultGatherer,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer builds the guide API server: metrics, the embedded OpenAPI
// document with its Swagger UI, the v1 routes (each timed by the latency
// histogram) and pprof, behind the CORS, access log and timeout middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Tunisia Guide",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	hist, err := metrics.NewRequestDuration(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not create request metrics: %w", err)
	}
	for _, route := range v1handler.New(deps.Deps).Routes() {
		mux.Handle(route.Pattern, controller.WithMetrics(route.Pattern, hist, route.Handler))
	}

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
