package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"tunisiaguide/pkg/controller"
)

func TestWithMetrics_ObservesByRouteAndStatus(t *testing.T) {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_seconds"},
		[]string{"route", "method", "code"})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := controller.WithMetrics("GET /v1/governorates/{id}", hist, next)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/governorates/nope", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/governorates/other", nil))

	require.Equal(t, 1, testutil.CollectAndCount(hist), "both requests should share one series")
}
