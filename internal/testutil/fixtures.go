package testutil

import (
	domainmatches "github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
)

// SamplePlayer returns a minimal player fixture with the provided id.
func SamplePlayer(id, name string, role players.Role, year string) players.Player {
	return players.Player{
		ID:        id,
		Name:      name,
		Role:      role,
		BirthYear: year,
	}
}

// SampleRoster returns a small roster spanning every role and cohort shape.
func SampleRoster() []players.Player {
	return []players.Player{
		SamplePlayer("p1", "Luca Bianchi", players.RolePortiere, "2008"),
		SamplePlayer("p2", "Marco Verdi", players.RoleDifensore, "2007"),
		SamplePlayer("p3", "Andrea Neri", players.RoleCentrocampista, "2009"),
		SamplePlayer("p4", "Mario Rossi", players.RoleAttaccante, "2008"),
	}
}

// SampleMatch returns a home match fixture with the provided id.
func SampleMatch(id, teamName string) domainmatches.Match {
	return domainmatches.Match{
		ID:           id,
		Date:         "2025-10-05",
		Time:         "14:45",
		HomeTeam:     teamName,
		AwayTeam:     "Accademia Vittuone",
		VenueAddress: "Via Vecchia Comasina 1",
		City:         "Seguro",
	}
}

// SampleSession returns a training session fixture with the provided id and date.
func SampleSession(id, date string) trainings.Session {
	return trainings.Session{ID: id, Date: date}
}
