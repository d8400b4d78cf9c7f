package assistant

import (
	"fmt"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
)

// SnapshotInput gathers the collections serialized for the assistant.
type SnapshotInput struct {
	TeamName string
	Roster   []players.Player
	Sessions []trainings.Session
	Calendar []matches.Match
	Totals   []stats.PlayerTotals
}

// BuildSnapshot renders the current state as plain text the assistant can
// reason over. The format is informal prose, not a contract.
func BuildSnapshot(in SnapshotInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Squadra: %s\n\n", in.TeamName)

	fmt.Fprintf(&b, "Rosa (%d giocatori):\n", len(in.Roster))
	for _, p := range in.Roster {
		fmt.Fprintf(&b, "- %s, %s, classe %s\n", p.Name, p.Role, p.BirthYear)
	}

	fmt.Fprintf(&b, "\nAllenamenti (%d):\n", len(in.Sessions))
	for _, s := range in.Sessions {
		line := s.Date
		if s.Notes != "" {
			line += " (" + s.Notes + ")"
		}
		fmt.Fprintf(&b, "- %s\n", line)
	}

	fmt.Fprintf(&b, "\nCalendario (%d partite):\n", len(in.Calendar))
	for _, m := range in.Calendar {
		fmt.Fprintf(&b, "- %s %s: %s vs %s (%s)\n", m.Date, m.Time, m.HomeTeam, m.AwayTeam, m.City)
	}

	b.WriteString("\nStatistiche stagionali:\n")
	for _, t := range in.Totals {
		fmt.Fprintf(&b, "- %s: %d gol, %d ammonizioni, %d espulsioni, %d minuti\n",
			t.PlayerName, t.Goals, t.YellowCards, t.RedCards, t.MinutesPlayed)
	}

	return b.String()
}
