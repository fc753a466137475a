package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"tunisiaguide/internal/api"
	"tunisiaguide/internal/api/handler/v1handler"
	"tunisiaguide/internal/catalog"
	"tunisiaguide/internal/notification"
	"tunisiaguide/internal/session"
	"tunisiaguide/pkg/clock"
	"tunisiaguide/pkg/metrics"
	"tunisiaguide/pkg/securestore/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.New()
	require.NoError(t, err)
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	store := memory.New()
	notifs := notification.New(store, notification.LogSender{})
	sessions, err := session.New(store, notifs, mp.Meter("tunisiaguide/session"),
		session.Options{Clock: clock.NewFake(time.Unix(0, 0))})
	require.NoError(t, err)
	sessions.Restore(context.Background())

	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Catalog:       cat,
		Sessions:      sessions,
		Notifications: notifs,
	}}, api.Options{
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		Registerer:     reg,
		Gatherer:       reg,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, ts *httptest.Server, method, path string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_RoutesAndMiddlewares(t *testing.T) {
	ts := newTestServer(t)

	res, _ := get(t, ts, http.MethodGet, "/v1/stats")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, _ = get(t, ts, http.MethodOptions, "/v1/session/login")
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = get(t, ts, http.MethodPut, "/v1/stats")
	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t)

	get(t, ts, http.MethodGet, "/v1/governorates/tunis")

	res, body := get(t, ts, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `guide_http_request_duration_seconds_count{code="200",method="GET",route="GET /v1/governorates/{id}"} 1`)
}

func TestServer_SessionMetrics(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Post(ts.URL+"/v1/session/login", "application/json",
		strings.NewReader(`{"email":"demo@tunisia.com","password":"123456"}`))
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := get(t, ts, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var line string
	for _, l := range strings.Split(body, "\n") {
		if strings.Contains(l, "login") && strings.Contains(l, "attempts_total") && !strings.HasPrefix(l, "#") {
			line = l
		}
	}
	require.Contains(t, line, `outcome="success"`)
	require.True(t, strings.HasSuffix(line, " 1"), line)
}

func TestServer_DocsAndProfiling(t *testing.T) {
	ts := newTestServer(t)

	res, body := get(t, ts, http.MethodGet, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "operationId: login")

	res, _ = get(t, ts, http.MethodGet, "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, ts, http.MethodGet, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
