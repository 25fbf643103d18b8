package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"mlb-storyteller-service/internal/config"
	"mlb-storyteller-service/internal/metrics"
	"mlb-storyteller-service/internal/providers/fixturedata"
	"mlb-storyteller-service/internal/providers/statsapi"
	"mlb-storyteller-service/internal/testutil"
)

type stubHTTPServer struct {
	listenErr    error
	listenCalled atomic.Bool
	shutdownDone atomic.Bool
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalled.Store(true)
	if s.listenErr != nil {
		return s.listenErr
	}
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownDone.Store(true)
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func fixtureConfig() config.Config {
	cfg := config.Load()
	cfg.Provider = "fixture"
	cfg.Metrics.Enabled = false
	return cfg
}

func TestNewServesFixtureGame(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	handler := srv.Handler()
	if handler == nil {
		t.Fatal("expected HTTP handler")
	}

	rr := testutil.Serve(handler, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(handler, http.MethodGet, "/games/715001", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestNewWithoutStoryKeyAnswers503(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := fixtureConfig()
	cfg.Story.APIKey = ""
	srv := New(cfg, logger)

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/generate-story", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestMetricsSetupFailureKeepsServerUsable(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unreachable")
	}
	defer func() { metricsSetup = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if srv.metricsServer != nil {
		t.Fatal("expected no metrics server after setup failure")
	}
	if out := buf.String(); len(out) == 0 {
		t.Fatal("expected setup failure logged")
	}
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	httpStub := &stubHTTPServer{}
	metricsStub := &stubHTTPServer{}
	srv.httpServer = httpStub
	srv.metricsServer = metricsStub

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv.Run(ctx, cancel)

	if !httpStub.shutdownDone.Load() {
		t.Fatal("expected HTTP server shutdown")
	}
	if !metricsStub.shutdownDone.Load() {
		t.Fatal("expected metrics server shutdown")
	}
}

func TestRunStopsWhenServerFails(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	srv := New(fixtureConfig(), logger)

	httpStub := &stubHTTPServer{listenErr: errors.New("port in use")}
	srv.httpServer = httpStub
	srv.metricsServer = nil

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after server failure")
	}
	if !httpStub.listenCalled.Load() {
		t.Fatal("expected listen attempted")
	}
}

func TestProviderFactorySelectsFixture(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	factory := newProviderFactory(logger, metrics.NewRecorder())

	cfg := fixtureConfig()
	if _, ok := factory.build(cfg).(*fixturedata.Provider); !ok {
		t.Fatal("expected fixture provider")
	}

	cfg.Provider = "statsapi"
	if _, ok := factory.build(cfg).(*statsapi.Client); !ok {
		t.Fatal("expected statsapi client")
	}
}
