package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"sync"
	"time"

	"github.com/seguro-calcio/roster-service/internal/app/roster"
	"github.com/seguro-calcio/roster-service/internal/app/squad"
	"github.com/seguro-calcio/roster-service/internal/app/stats"
	"github.com/seguro-calcio/roster-service/internal/app/trainings"
	"github.com/seguro-calcio/roster-service/internal/assistant"
	domainmatches "github.com/seguro-calcio/roster-service/internal/domain/matches"
	domainstandings "github.com/seguro-calcio/roster-service/internal/domain/standings"
	"github.com/seguro-calcio/roster-service/internal/metrics"
	"github.com/seguro-calcio/roster-service/internal/providers"
)

type nowFunc func() time.Time

// MatchSource exposes the season calendar to the match endpoints.
type MatchSource interface {
	ListMatches() []domainmatches.Match
	GetMatch(id string) (domainmatches.Match, bool)
}

// AssistantClient asks the external assistant a question over a serialized
// state snapshot.
type AssistantClient interface {
	Ask(ctx context.Context, snapshot, question string) (assistant.Answer, error)
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	roster    *roster.Service
	trainings *trainings.Service
	squad     *squad.Service
	stats     *stats.Service
	matches   MatchSource
	standings providers.StandingsProvider
	assistant AssistantClient
	teamName  string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       nowFunc

	standingsMu   sync.Mutex
	lastStandings []domainstandings.Row
}

// HandlerConfig bundles the Handler dependencies.
type HandlerConfig struct {
	Roster    *roster.Service
	Trainings *trainings.Service
	Squad     *squad.Service
	Stats     *stats.Service
	Matches   MatchSource
	Standings providers.StandingsProvider
	Assistant AssistantClient
	TeamName  string
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		roster:    cfg.Roster,
		trainings: cfg.Trainings,
		squad:     cfg.Squad,
		stats:     cfg.Stats,
		matches:   cfg.Matches,
		standings: cfg.Standings,
		assistant: cfg.Assistant,
		teamName:  cfg.TeamName,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		now:       time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness. State is local, so readiness follows liveness.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) methodNotAllowed(w nethttp.ResponseWriter) {
	h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
}

func decodeJSON(r *nethttp.Request, into any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(into)
}
