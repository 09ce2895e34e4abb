package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type routes map[string]echo.HandlerFunc

func (r routes) RegisterRoutes(e *echo.Echo) {
	for path, h := range r {
		e.GET(path, h)
	}
}

func newTestServer(t *testing.T, r routes) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewServer(r, WithMetrics("/metrics", reg, reg)), reg
}

func TestPanicRendersEnvelopeAndIsCounted(t *testing.T) {
	srv, reg := newTestServer(t, routes{
		"/boom": func(c echo.Context) error { panic(errors.New("kaboom")) },
	})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	want := `{"success":false,"error":"kaboom"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("unexpected body %q", got)
	}

	expected := `
# HELP http_requests_total Total number of HTTP requests
# TYPE http_requests_total counter
http_requests_total{method="GET",route="/boom",status="500"} 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "http_requests_total"); err != nil {
		t.Fatalf("metrics mismatch: %v", err)
	}
}

func TestInternalErrorRendersMessage(t *testing.T) {
	srv, _ := newTestServer(t, routes{
		"/fail": func(c echo.Context) error {
			cause := errors.New("context canceled")
			return AppErrorResponse(c, InternalError(cause.Error()).WithError(cause))
		},
		"/bad": func(c echo.Context) error {
			return AppErrorResponse(c, BadRequestError("Query too short"))
		},
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/fail", http.StatusInternalServerError, `{"success":false,"error":"context canceled"}`},
		{"/bad", http.StatusBadRequest, `{"success":false,"error":"Query too short"}`},
		{"/missing", http.StatusNotFound, `{"success":false,"error":"Not Found"}`},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.status {
			t.Fatalf("%s: expected %d, got %d", tt.path, tt.status, rec.Code)
		}
		if got := strings.TrimSpace(rec.Body.String()); got != tt.body {
			t.Fatalf("%s: unexpected body %q", tt.path, got)
		}
	}
}
