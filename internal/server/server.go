package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/app/roster"
	"github.com/seguro-calcio/roster-service/internal/app/squad"
	"github.com/seguro-calcio/roster-service/internal/app/stats"
	"github.com/seguro-calcio/roster-service/internal/app/trainings"
	"github.com/seguro-calcio/roster-service/internal/assistant"
	"github.com/seguro-calcio/roster-service/internal/config"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	httpserver "github.com/seguro-calcio/roster-service/internal/http"
	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/metrics"
	"github.com/seguro-calcio/roster-service/internal/providers/fixture"
	"github.com/seguro-calcio/roster-service/internal/providers/standings"
	"github.com/seguro-calcio/roster-service/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Server bundles the wired application for a single process.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         Store
	httpServer    httpServer
	metricsServer httpServer
	autosaver     *snapshots.Autosaver
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	st, err := buildStore(cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	seedCalendar(cfg, st, logger)

	var saver *snapshots.Autosaver
	if cfg.Snapshots.Enabled {
		restoreState(cfg, st, logger)
		writer := snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays)
		saver = snapshots.NewAutosaver(st, writer, logger, recorder, cfg.Snapshots.Interval)
	}

	httpSrv := buildHTTPServer(cfg, st, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		autosaver:     saver,
		metricsStop:   metricsShutdown,
	}, nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recorder, promHandler, shutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed, continuing without exporters", err)
		return metrics.NewRecorder(), nil, nil
	}
	if promHandler == nil {
		return recorder, nil, shutdown
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	srv := &http.Server{
		Addr:         ":" + cfg.Metrics.Port,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return recorder, netHTTPServer{srv: srv}, shutdown
}

// seedCalendar loads the static season fixtures into the store. The
// calendar is the sole source of match data.
func seedCalendar(cfg config.Config, st Store, logger *slog.Logger) {
	provider := fixture.New(cfg.TeamName)
	calendar, err := provider.SeasonCalendar(context.Background())
	if err != nil {
		logging.Error(logger, "failed to load season calendar", err)
		return
	}
	st.SetMatches(calendar)
	logging.Info(logger, "season calendar loaded", slog.Int(logging.FieldCount, len(calendar)))
}

// restoreState replaces every collection from the newest snapshot, when one
// exists. The SQLite store already restored itself from its database.
func restoreState(cfg config.Config, st Store, logger *slog.Logger) {
	if strings.EqualFold(cfg.Store.Driver, "sqlite") {
		return
	}

	fsStore := snapshots.NewFSStore(cfg.Snapshots.Dir)
	state, ok, err := fsStore.LoadLatest()
	if err != nil {
		logging.Error(logger, "failed to restore state snapshot", err)
		return
	}
	if !ok {
		logging.Info(logger, "no state snapshot found, starting empty")
		return
	}

	snapshots.Apply(state, st)
	logging.Info(logger, "state restored from snapshot", slog.String(logging.FieldDate, state.Date))
}

func buildHTTPServer(cfg config.Config, st Store, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	rules := players.NewCohortRules(cfg.Roster.Cohorts)

	rosterSvc := roster.NewService(st, rules)
	trainingsSvc := trainings.NewService(st)
	squadSvc := squad.NewService(st, squad.Config{
		TeamName:    cfg.TeamName,
		Competition: cfg.Competition,
		MaxSize:     cfg.Squad.MaxSize,
		MaxOverAge:  cfg.Squad.MaxOverAge,
		Rules:       rules,
	})
	statsSvc := stats.NewService(st)

	handlerCfg := httpserver.HandlerConfig{
		Roster:    rosterSvc,
		Trainings: trainingsSvc,
		Squad:     squadSvc,
		Stats:     statsSvc,
		Matches:   st,
		TeamName:  cfg.TeamName,
		Logger:    logger,
		Metrics:   recorder,
	}
	if cfg.Standings.URL != "" {
		handlerCfg.Standings = standings.NewClient(standings.Config{URL: cfg.Standings.URL})
	}
	if cfg.Assistant.URL != "" {
		handlerCfg.Assistant = assistant.NewClient(assistant.Config{
			BaseURL: cfg.Assistant.URL,
			APIKey:  cfg.Assistant.APIKey,
		})
	}

	handler := httpserver.NewHandler(handlerCfg)
	router := httpserver.NewRouter(handler)
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the servers and the autosaver, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics(stop)
	s.startServer(stop)
	if s.autosaver != nil {
		s.autosaver.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, stop)
}

func (s *Server) startMetrics(stop context.CancelFunc) {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, stop)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, stop context.CancelFunc) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error(logger, name+" server failed", err)
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	if s.autosaver != nil {
		s.autosaver.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "http server shutdown failed", err)
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics server shutdown failed", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Error(s.logger, "metrics exporter shutdown failed", err)
		}
	}
	logging.Info(s.logger, "shutdown complete")
}
