package fixture

import (
	"context"
	"fmt"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
)

// Provider serves the hard-coded season calendar. Fixtures are static for
// the whole season and match ids derive from calendar position.
type Provider struct {
	teamName string
}

// New creates a fixture provider for the given team.
func New(teamName string) *Provider {
	return &Provider{teamName: teamName}
}

type fixtureEntry struct {
	date     string
	time     string
	opponent string
	home     bool
	venue    string
	city     string
}

// The 2025/26 Girone B calendar. Home fixtures are played at the Comunale.
var seasonFixtures = []fixtureEntry{
	{date: "2025-09-14", time: "15:30", opponent: "Accademia Vittuone", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-09-21", time: "14:45", opponent: "Ossona", home: false, venue: "Via Gorizia 26", city: "Ossona"},
	{date: "2025-09-28", time: "15:30", opponent: "Barbaiana", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-10-05", time: "14:45", opponent: "San Giorgio Limito", home: false, venue: "Via Cassanese 108", city: "Limito"},
	{date: "2025-10-12", time: "15:30", opponent: "Bareggio San Martino", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-10-19", time: "14:45", opponent: "Sedriano", home: false, venue: "Via Campo Sportivo 3", city: "Sedriano"},
	{date: "2025-10-26", time: "15:30", opponent: "Pregnanese", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-11-02", time: "14:30", opponent: "Marcallese", home: false, venue: "Via Lega Lombarda 33", city: "Marcallo"},
	{date: "2025-11-09", time: "15:30", opponent: "Casorezzo", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-11-16", time: "14:30", opponent: "Turbighese", home: false, venue: "Via Milano 1", city: "Turbigo"},
	{date: "2025-11-23", time: "15:30", opponent: "Vanzaghese", home: true, venue: "Via Vecchia Comasina 1", city: "Seguro"},
	{date: "2025-11-30", time: "14:30", opponent: "Arluno", home: false, venue: "Via Marconi 21", city: "Arluno"},
}

// SeasonCalendar returns the deterministic fixture list.
func (p *Provider) SeasonCalendar(ctx context.Context) ([]matches.Match, error) {
	_ = ctx

	calendar := make([]matches.Match, 0, len(seasonFixtures))
	for i, f := range seasonFixtures {
		m := matches.Match{
			ID:           fmt.Sprintf("match-%02d", i+1),
			Date:         f.date,
			Time:         f.time,
			VenueAddress: f.venue,
			City:         f.city,
		}
		if f.home {
			m.HomeTeam = p.teamName
			m.AwayTeam = f.opponent
		} else {
			m.HomeTeam = f.opponent
			m.AwayTeam = p.teamName
		}
		calendar = append(calendar, m)
	}
	return calendar, nil
}
