package http

import (
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/testutil"
)

func TestLoggingMiddleware(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if logging.FromContext(r.Context()) == nil {
			t.Fatalf("expected request-scoped logger")
		}
		w.WriteHeader(nethttp.StatusTeapot)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, inner), nethttp.MethodGet, "/players", nil)
	if rr.Code != nethttp.StatusTeapot {
		t.Fatalf("unexpected status %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	logged := buf.String()
	if !strings.Contains(logged, "request complete") || !strings.Contains(logged, "status_code=418") {
		t.Fatalf("unexpected log output %s", logged)
	}
}

func TestLoggingMiddlewareKeepsProvidedRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if requestIDFromContext(r.Context()) != "req-42" {
			t.Fatalf("expected upstream request id to be kept")
		}
	})

	req, _ := nethttp.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, inner), req)
	if rr.Header().Get("X-Request-ID") != "req-42" {
		t.Fatalf("expected echoed request id, got %q", rr.Header().Get("X-Request-ID"))
	}
}
