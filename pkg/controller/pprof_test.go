package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tunisiaguide/pkg/controller"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "symbol"} {
		t.Run("/"+path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, controller.PprofPrefix+path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}
