package providers

import (
	"context"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/standings"
)

// CalendarProvider supplies the season fixture list. The calendar is the
// sole source of match data; match ids derive from calendar position.
type CalendarProvider interface {
	SeasonCalendar(ctx context.Context) ([]matches.Match, error)
}

// StandingsProvider fetches the published league table.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]standings.Row, error)
}
