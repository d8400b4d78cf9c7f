package snapshots

import (
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
)

// State is the full serializable application state. Matches are excluded:
// the season calendar is reseeded from the fixture provider on boot.
type State struct {
	Date       string                                           `json:"date"`
	Players    []players.Player                                 `json:"players"`
	Sessions   []trainings.Session                              `json:"sessions"`
	Attendance map[string]map[string]trainings.AttendanceStatus `json:"attendance"`
	Selections map[string][]string                              `json:"selections"`
	Stats      map[string]map[string]stats.StatLine             `json:"stats"`
}

// Store is the slice of the store the snapshot layer reads and replaces.
type Store interface {
	ListPlayers() []players.Player
	SetPlayers([]players.Player)
	ListSessions() []trainings.Session
	SetSessions([]trainings.Session)
	AllAttendance() map[string]map[string]trainings.AttendanceStatus
	SetAttendance(map[string]map[string]trainings.AttendanceStatus)
	AllSelections() map[string][]string
	SetSelections(map[string][]string)
	AllStats() map[string]map[string]stats.StatLine
	SetStats(map[string]map[string]stats.StatLine)
}

// Capture copies every collection out of the store.
func Capture(store Store) State {
	return State{
		Players:    store.ListPlayers(),
		Sessions:   store.ListSessions(),
		Attendance: store.AllAttendance(),
		Selections: store.AllSelections(),
		Stats:      store.AllStats(),
	}
}

// Apply replaces every collection in the store with the snapshot's content.
// Each collection is a full replace, never a merge.
func Apply(state State, store Store) {
	store.SetPlayers(state.Players)
	store.SetSessions(state.Sessions)
	store.SetAttendance(state.Attendance)
	store.SetSelections(state.Selections)
	store.SetStats(state.Stats)
}
