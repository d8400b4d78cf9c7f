package stats

import (
	"errors"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
)

// ErrUnknownField is returned for stat fields outside the fixed four.
var ErrUnknownField = errors.New("unknown statistic field")

// unknownPlayerName labels stat rows whose player has left the roster.
const unknownPlayerName = "Sconosciuto"

// Store defines the statistics operations the service needs.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	MatchStats(matchID string) map[string]stats.StatLine
	SetStatLine(matchID, playerID string, line stats.StatLine)
	AllStats() map[string]map[string]stats.StatLine
}

// Service owns the per-match statistics ledger and its season roll-up.
type Service struct {
	store Store
}

// Row is one per-match statistics entry resolved against the roster.
type Row struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	stats.StatLine
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SetStat upserts one counter for a player in a match. Negative values are
// clamped to zero; numeric input is best effort and never errors.
func (s *Service) SetStat(matchID, playerID, field string, value int) (stats.StatLine, error) {
	if !stats.ValidField(field) {
		return stats.StatLine{}, ErrUnknownField
	}
	if value < 0 {
		value = 0
	}

	line := s.store.MatchStats(matchID)[playerID]
	switch field {
	case stats.FieldGoals:
		line.Goals = value
	case stats.FieldYellowCards:
		line.YellowCards = value
	case stats.FieldRedCards:
		line.RedCards = value
	case stats.FieldMinutesPlayed:
		line.MinutesPlayed = value
	}
	s.store.SetStatLine(matchID, playerID, line)
	return line, nil
}

// MatchRows resolves one match's stat lines against the roster. Entries for
// deleted players are kept and labelled rather than dropped.
func (s *Service) MatchRows(matchID string) []Row {
	lines := s.store.MatchStats(matchID)
	rows := make([]Row, 0, len(lines))
	for playerID, line := range lines {
		name := unknownPlayerName
		if p, ok := s.store.GetPlayer(playerID); ok {
			name = p.Name
		}
		rows = append(rows, Row{PlayerID: playerID, PlayerName: name, StatLine: line})
	}
	return rows
}

// SeasonAggregate folds the full statistics ledger into per-player season
// totals. It is recomputed from scratch on every call; every roster player
// is present, with all-zero counters when nothing was recorded. Ledger
// entries for players no longer on the roster are skipped.
func (s *Service) SeasonAggregate(sort stats.SortState) []stats.PlayerTotals {
	totals := make(map[string]stats.StatLine)
	for _, lines := range s.store.AllStats() {
		for playerID, line := range lines {
			totals[playerID] = totals[playerID].Add(line)
		}
	}

	roster := s.store.ListPlayers()
	rows := make([]stats.PlayerTotals, 0, len(roster))
	for _, p := range roster {
		rows = append(rows, stats.PlayerTotals{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			StatLine:   totals[p.ID],
		})
	}
	stats.SortTotals(rows, sort)
	return rows
}
