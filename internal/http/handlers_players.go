package http

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/app/roster"
	"github.com/seguro-calcio/roster-service/internal/logging"
)

type playerRequest struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	BirthYear *string `json:"birthYear"`
	Number    *string `json:"number"`
}

// Players lists the roster or adds a new player.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		h.writeJSON(w, nethttp.StatusOK, h.roster.Players())
	case nethttp.MethodPost:
		var req playerRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		p, err := h.roster.AddPlayer(deref(req.Name), deref(req.Role), deref(req.BirthYear), deref(req.Number))
		if err != nil {
			h.writeRosterError(w, err)
			return
		}
		h.writeJSON(w, nethttp.StatusCreated, p)
	default:
		h.methodNotAllowed(w)
	}
}

// PlayerByID updates or removes a single player. Expect path: /players/{id}.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/players/")
	if id == "" || strings.Contains(id, "/") {
		h.writeError(w, nethttp.StatusBadRequest, "missing player id")
		return
	}

	switch r.Method {
	case nethttp.MethodGet:
		p, ok := h.roster.PlayerByID(id)
		if !ok {
			h.writeError(w, nethttp.StatusNotFound, "player not found")
			return
		}
		h.writeJSON(w, nethttp.StatusOK, p)
	case nethttp.MethodPut, nethttp.MethodPatch:
		var req playerRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		p, err := h.roster.UpdatePlayer(id, roster.Patch{
			Name:      req.Name,
			Role:      req.Role,
			BirthYear: req.BirthYear,
			Number:    req.Number,
		})
		if err != nil {
			h.writeRosterError(w, err)
			return
		}
		h.writeJSON(w, nethttp.StatusOK, p)
	case nethttp.MethodDelete:
		if err := h.roster.RemovePlayer(id); err != nil {
			h.writeRosterError(w, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		h.methodNotAllowed(w)
	}
}

// ImportPlayers ingests a CSV body and reports row outcomes.
func (h *Handler) ImportPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		h.methodNotAllowed(w)
		return
	}
	defer r.Body.Close()

	result, err := h.roster.ImportCSV(r.Body)
	if err != nil {
		h.writeRosterError(w, err)
		return
	}

	h.metrics.RecordImportRows(result.Imported, result.Skipped, result.Duplicates)
	logging.Info(logging.FromContext(r.Context()), "csv import complete",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"duplicates", result.Duplicates,
	)
	h.writeJSON(w, nethttp.StatusOK, result)
}

func (h *Handler) writeRosterError(w nethttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		h.writeError(w, nethttp.StatusNotFound, err.Error())
	case errors.Is(err, roster.ErrMissingFields),
		errors.Is(err, roster.ErrInvalidRole),
		errors.Is(err, roster.ErrEmptyName),
		errors.Is(err, roster.ErrBadHeader):
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
	default:
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
