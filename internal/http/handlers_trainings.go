package http

import (
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/app/trainings"
)

type sessionRequest struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type attendanceRequest struct {
	PlayerID string `json:"playerId"`
	Status   string `json:"status"`
}

// Trainings lists sessions or creates a new one.
func (h *Handler) Trainings(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		h.writeJSON(w, nethttp.StatusOK, h.trainings.Sessions())
	case nethttp.MethodPost:
		var req sessionRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		session, err := h.trainings.CreateSession(req.Date, req.Notes)
		if err != nil {
			h.writeTrainingError(w, err)
			return
		}
		h.writeJSON(w, nethttp.StatusCreated, session)
	default:
		h.methodNotAllowed(w)
	}
}

// TrainingByID handles /trainings/{id} deletion and the attendance
// sub-resource at /trainings/{id}/attendance.
func (h *Handler) TrainingByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/trainings/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing session id")
		return
	}

	if sub == "attendance" {
		h.sessionAttendance(w, r, id)
		return
	}
	if sub != "" {
		h.writeError(w, nethttp.StatusNotFound, "not found")
		return
	}

	if r.Method != nethttp.MethodDelete {
		h.methodNotAllowed(w)
		return
	}

	deleted := h.trainings.DeleteSession(id)
	if !deleted {
		h.writeError(w, nethttp.StatusNotFound, "session not found")
		return
	}

	// Callers that were focused on this session must drop that selection;
	// echo it back so the client can clear it.
	resp := map[string]any{"deleted": true}
	if selected := r.URL.Query().Get("selected"); selected == id {
		resp["selectionCleared"] = true
	}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

func (h *Handler) sessionAttendance(w nethttp.ResponseWriter, r *nethttp.Request, sessionID string) {
	switch r.Method {
	case nethttp.MethodGet:
		entries, err := h.trainings.Attendance(sessionID)
		if err != nil {
			h.writeTrainingError(w, err)
			return
		}
		h.writeJSON(w, nethttp.StatusOK, entries)
	case nethttp.MethodPut:
		var req attendanceRequest
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "invalid json body")
			return
		}
		if req.PlayerID == "" {
			h.writeError(w, nethttp.StatusBadRequest, "playerId is required")
			return
		}
		if err := h.trainings.SetAttendance(sessionID, req.PlayerID, req.Status); err != nil {
			h.writeTrainingError(w, err)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		h.methodNotAllowed(w)
	}
}

// MonthlySummary returns per-player attendance counts for a month.
func (h *Handler) MonthlySummary(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}
	month := r.URL.Query().Get("month")
	summary, err := h.trainings.MonthlySummary(month)
	if err != nil {
		h.writeTrainingError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, summary)
}

// ExportMonthly downloads the monthly summary as CSV.
func (h *Handler) ExportMonthly(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.methodNotAllowed(w)
		return
	}
	month := r.URL.Query().Get("month")
	data, filename, err := h.trainings.ExportMonthlyCSV(month)
	if err != nil {
		h.writeTrainingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(nethttp.StatusOK)
	if _, err := w.Write(data); err != nil && h.logger != nil {
		h.logger.Error("failed to write csv export", "error", err)
	}
}

func (h *Handler) writeTrainingError(w nethttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trainings.ErrSessionNotFound):
		h.writeError(w, nethttp.StatusNotFound, err.Error())
	case errors.Is(err, trainings.ErrMissingDate),
		errors.Is(err, trainings.ErrInvalidStatus),
		errors.Is(err, trainings.ErrInvalidMonth):
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
	default:
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
	}
}
