// Package controller contains the HTTP middlewares and helper handlers shared
// by the guide API server.
//
// Middlewares:
//   - WithCORS: permissive CORS headers for the app's web build, OPTIONS preflight short-circuit.
//   - WithLogger: request id, request-scoped logger and an access log line.
//   - WithMetrics: per-route latency histogram.
//
// Helpers:
//   - PprofMux: net/http/pprof handlers to mount under a debug path.
package controller
