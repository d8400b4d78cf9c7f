package matches

import "strings"

// Location says whether a match is played at home or away.
type Location string

const (
	LocationHome Location = "Casa"
	LocationAway Location = "Trasferta"
)

// Match is one fixture on the season calendar. Identity is fixed once the
// calendar is built.
type Match struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	VenueAddress string `json:"venueAddress"`
	City         string `json:"city"`
}

// LocationFor derives home/away by comparing the fixture against the team's
// own name. A fixture that names the team as home is Casa, anything else is
// Trasferta.
func (m Match) LocationFor(teamName string) Location {
	if strings.EqualFold(strings.TrimSpace(m.HomeTeam), strings.TrimSpace(teamName)) {
		return LocationHome
	}
	return LocationAway
}

// OpponentFor derives the opposing team name for the given team.
func (m Match) OpponentFor(teamName string) string {
	if m.LocationFor(teamName) == LocationHome {
		return m.AwayTeam
	}
	return m.HomeTeam
}
