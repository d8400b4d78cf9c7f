package http

import (
	"errors"
	nethttp "net/http"
	"sort"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/app/squad"
	"github.com/seguro-calcio/roster-service/internal/app/stats"
	domainmatches "github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/metrics"
)

// matchView decorates a fixture with its derived fields. Location and
// opponent are computed on every read, never stored.
type matchView struct {
	domainmatches.Match
	Location domainmatches.Location `json:"location"`
	Opponent string                 `json:"opponent"`
}

type toggleRequest struct {
	PlayerID string `json:"playerId"`
}

type statRequest struct {
	PlayerID string `json:"playerId"`
	Field    string `json:"field"`
	Value    int    `json:"value"`
}

// Matches lists the season calendar with derived home/away fields.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	items := h.matches.ListMatches()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	views := make([]matchView, 0, len(items))
	for _, m := range items {
		views = append(views, matchView{
			Match:    m,
			Location: m.LocationFor(h.teamName),
			Opponent: m.OpponentFor(h.teamName),
		})
	}
	h.writeJSON(w, nethttp.StatusOK, views)
}

// MatchByID routes the per-match sub-resources: squad, announcement, stats.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/matches/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing match id")
		return
	}

	switch sub {
	case "squad":
		h.matchSquad(w, r, id)
	case "announcement":
		h.matchAnnouncement(w, r, id)
	case "stats":
		h.matchStats(w, r, id)
	default:
		h.writeError(w, nethttp.StatusNotFound, "not found")
	}
}

func (h *Handler) matchSquad(w nethttp.ResponseWriter, r *nethttp.Request, matchID string) {
	switch r.Method {
	case nethttp.MethodGet:
		selected, err := h.squad.Squad(matchID)
		if err != nil {
			h.writeSquadError(w, err)
			return
		}
		h.writeJSON(w, nethttp.StatusOK, selected)
	case nethttp.MethodPost:
		var req toggleRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		if req.PlayerID == "" {
			h.writeError(w, nethttp.StatusBadRequest, "playerId is required")
			return
		}

		result, err := h.squad.Toggle(matchID, req.PlayerID)
		if err != nil {
			h.writeSquadError(w, err)
			return
		}
		if result.Rejected {
			h.metrics.RecordQuotaRejection(result.Reason)
			logging.Info(logging.FromContext(r.Context()), "squad addition rejected",
				logging.FieldMatchID, matchID,
				logging.FieldPlayerID, req.PlayerID,
				metrics.AttrReason, result.Reason,
			)
		}
		h.writeJSON(w, nethttp.StatusOK, result)
	default:
		h.methodNotAllowed(w)
	}
}

func (h *Handler) matchAnnouncement(w nethttp.ResponseWriter, r *nethttp.Request, matchID string) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}

	text, err := h.squad.Announcement(matchID)
	if err != nil {
		h.writeSquadError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil && h.logger != nil {
		h.logger.Error("failed to write announcement", "error", err)
	}
}

func (h *Handler) matchStats(w nethttp.ResponseWriter, r *nethttp.Request, matchID string) {
	if _, ok := h.matches.GetMatch(matchID); !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not found")
		return
	}

	switch r.Method {
	case nethttp.MethodGet:
		h.writeJSON(w, nethttp.StatusOK, h.stats.MatchRows(matchID))
	case nethttp.MethodPut:
		var req statRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		if req.PlayerID == "" {
			h.writeError(w, nethttp.StatusBadRequest, "playerId is required")
			return
		}
		line, err := h.stats.SetStat(matchID, req.PlayerID, req.Field, req.Value)
		if err != nil {
			if errors.Is(err, stats.ErrUnknownField) {
				h.writeError(w, nethttp.StatusBadRequest, err.Error())
				return
			}
			h.writeError(w, nethttp.StatusInternalServerError, err.Error())
			return
		}
		h.writeJSON(w, nethttp.StatusOK, line)
	default:
		h.methodNotAllowed(w)
	}
}

func (h *Handler) writeSquadError(w nethttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, squad.ErrMatchNotFound), errors.Is(err, squad.ErrPlayerNotFound):
		h.writeError(w, nethttp.StatusNotFound, err.Error())
	case errors.Is(err, squad.ErrEmptySquad):
		h.writeError(w, nethttp.StatusConflict, err.Error())
	default:
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
	}
}
