package squad

import (
	"fmt"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/timeutil"
)

// meetingLeadMinutes is how long before kickoff the team meets at the venue.
const meetingLeadMinutes = 90

var italianWeekdays = [...]string{
	"Domenica", "Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato",
}

var italianMonths = [...]string{
	"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// Announcement renders the fixed-format convocation message for a match.
// Same inputs always produce the same string.
func (s *Service) Announcement(matchID string) (string, error) {
	match, ok := s.store.GetMatch(matchID)
	if !ok {
		return "", ErrMatchNotFound
	}
	squad, err := s.Squad(matchID)
	if err != nil {
		return "", err
	}
	if len(squad) == 0 {
		return "", ErrEmptySquad
	}

	location := match.LocationFor(s.cfg.TeamName)
	opponent := strings.ToUpper(match.OpponentFor(s.cfg.TeamName))

	var b strings.Builder
	fmt.Fprintf(&b, "CONVOCAZIONE - %s\n", strings.ToUpper(s.cfg.Competition))
	fmt.Fprintf(&b, "%s vs %s (%s)\n\n", strings.ToUpper(s.cfg.TeamName), opponent, location)
	fmt.Fprintf(&b, "Data: %s\n", formatFullDate(match.Date))
	fmt.Fprintf(&b, "Ritrovo: %s\n", timeutil.MinutesBefore(match.Time, meetingLeadMinutes))
	fmt.Fprintf(&b, "Calcio d'inizio: %s\n", match.Time)
	fmt.Fprintf(&b, "Campo: %s - %s\n\n", match.VenueAddress, match.City)
	fmt.Fprintf(&b, "Convocati (%d):\n", len(squad))
	for _, p := range squad {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Name, p.Role)
	}
	b.WriteString("\nSi raccomanda la massima puntualità.\n")
	b.WriteString("Portare documento di identità e borsa completa.\n")
	return b.String(), nil
}

// formatFullDate spells out a YYYY-MM-DD date in Italian. Dates that do not
// parse are passed through unchanged.
func formatFullDate(date string) string {
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d %s %d",
		italianWeekdays[int(parsed.Weekday())],
		parsed.Day(),
		italianMonths[int(parsed.Month())-1],
		parsed.Year(),
	)
}
