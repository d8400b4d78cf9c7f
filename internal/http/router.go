package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/import", handler.ImportPlayers)
	mux.HandleFunc("/players/", handler.PlayerByID)
	mux.HandleFunc("/trainings", handler.Trainings)
	mux.HandleFunc("/trainings/summary", handler.MonthlySummary)
	mux.HandleFunc("/trainings/export", handler.ExportMonthly)
	mux.HandleFunc("/trainings/", handler.TrainingByID)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/stats/season", handler.SeasonStats)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/assistant/ask", handler.Ask)
	return mux
}
