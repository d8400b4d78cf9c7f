package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/seguro-calcio/roster-service/internal/config"
	"github.com/seguro-calcio/roster-service/internal/store"
	"github.com/seguro-calcio/roster-service/internal/testutil"
)

type stubHTTPServer struct {
	addrVal       string
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addrVal }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.Snapshots.Dir = t.TempDir()
	return cfg
}

func TestNewWiresServer(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	srv, err := New(testConfig(t), logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.httpServer == nil || srv.store == nil || srv.autosaver == nil {
		t.Fatalf("expected wired server, got %+v", srv)
	}
	if srv.httpServer.Addr() != ":4000" {
		t.Fatalf("unexpected addr %s", srv.httpServer.Addr())
	}

	// The season calendar is seeded on boot.
	if len(srv.store.ListMatches()) != 12 {
		t.Fatalf("expected seeded calendar, got %d matches", len(srv.store.ListMatches()))
	}
}

func TestBuildStoreDefaultsToMemory(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	st, err := buildStore(config.StoreConfig{Driver: "memory"}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", st)
	}

	st, err = buildStore(config.StoreConfig{Driver: "bizarre"}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Fatalf("expected fallback to memory store, got %T", st)
	}
}

func TestRunShutsDownGracefully(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()

	srv, err := New(testConfig(t), logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stub := &stubHTTPServer{addrVal: ":0", listenErr: http.ErrServerClosed}
	srv.httpServer = stub
	srv.metricsServer = nil

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv.Run(ctx, cancel)

	if stub.shutdownCalls != 1 {
		t.Fatalf("expected one shutdown call, got %d", stub.shutdownCalls)
	}
}

func TestLaunchServerStopsOnFailure(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	stub := &stubHTTPServer{listenErr: errors.New("port in use")}

	ctx, cancel := context.WithCancel(context.Background())
	launchServer("http", stub, logger, cancel)

	<-ctx.Done()
	if stub.listenCalls != 1 {
		t.Fatalf("expected one listen attempt, got %d", stub.listenCalls)
	}
}
