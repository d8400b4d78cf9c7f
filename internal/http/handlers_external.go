package http

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/seguro-calcio/roster-service/internal/assistant"
	domainstandings "github.com/seguro-calcio/roster-service/internal/domain/standings"
	domainstats "github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/providers"
)

type askReq struct {
	Question string `json:"question"`
}

// SeasonStats returns the season aggregate, sorted by the requested column.
func (h *Handler) SeasonStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	key, _ := domainstats.ParseSortKey(r.URL.Query().Get("sort"))
	state := domainstats.SortState{Key: key, Descending: key != domainstats.SortByName}
	switch r.URL.Query().Get("dir") {
	case "asc":
		state.Descending = false
	case "desc":
		state.Descending = true
	}

	h.writeJSON(w, nethttp.StatusOK, h.stats.SeasonAggregate(state))
}

// Standings mirrors the external league table. A failed fetch degrades to
// the last successful result instead of erroring.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}
	if h.standings == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "standings not configured")
		return
	}

	logger := logging.FromContext(r.Context())

	var rows []domainstandings.Row
	start := h.now()
	err := providers.Do(r.Context(), logger, "standings", func(ctx context.Context) error {
		fetched, fetchErr := h.standings.FetchStandings(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		rows = fetched
		return nil
	})
	h.metrics.RecordProviderAttempt("standings", time.Since(start), err)

	if err != nil {
		h.standingsMu.Lock()
		cached := h.lastStandings
		h.standingsMu.Unlock()

		if len(cached) > 0 {
			logging.Warn(logger, "standings fetch failed, serving cached table", "error", err.Error())
			h.writeJSON(w, nethttp.StatusOK, cached)
			return
		}
		logging.Error(logger, "standings fetch failed", err)
		h.writeError(w, nethttp.StatusBadGateway, "standings unavailable")
		return
	}

	h.standingsMu.Lock()
	h.lastStandings = rows
	h.standingsMu.Unlock()
	h.writeJSON(w, nethttp.StatusOK, rows)
}

// Ask forwards a question to the external assistant together with a
// serialized snapshot of the current state.
func (h *Handler) Ask(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w)
		return
	}
	if h.assistant == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "assistant not configured")
		return
	}

	var req askReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
		return
	}
	if req.Question == "" {
		h.writeError(w, nethttp.StatusBadRequest, "question is required")
		return
	}

	snapshot := assistant.BuildSnapshot(assistant.SnapshotInput{
		TeamName: h.teamName,
		Roster:   h.roster.Players(),
		Sessions: h.trainings.Sessions(),
		Calendar: h.matches.ListMatches(),
		Totals:   h.stats.SeasonAggregate(domainstats.DefaultSortState()),
	})

	start := h.now()
	answer, err := h.assistant.Ask(r.Context(), snapshot, req.Question)
	h.metrics.RecordProviderAttempt("assistant", time.Since(start), err)
	if err != nil {
		logging.Error(logging.FromContext(r.Context()), "assistant call failed", err)
		h.writeError(w, nethttp.StatusBadGateway, "assistant unavailable")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, answer)
}
