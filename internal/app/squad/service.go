package squad

import (
	"errors"
	"sync"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
)

var (
	// ErrMatchNotFound is returned when the match id is not on the calendar.
	ErrMatchNotFound = errors.New("match not found")
	// ErrPlayerNotFound is returned when adding an id not on the roster.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrEmptySquad is returned when an announcement is requested for an
	// empty selection.
	ErrEmptySquad = errors.New("no players selected")
)

// Rejection reasons reported when a toggle addition is refused.
const (
	ReasonSquadFull    = "squad full"
	ReasonOverAgeQuota = "over-age quota reached"
)

// Store defines the selection operations the service needs.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	GetMatch(id string) (matches.Match, bool)
	Selection(matchID string) map[string]struct{}
	AddToSelection(matchID, playerID string)
	RemoveFromSelection(matchID, playerID string)
}

// Config carries the convocation rules.
type Config struct {
	TeamName    string
	Competition string
	MaxSize     int
	MaxOverAge  int
	Rules       players.CohortRules
}

// Service owns per-match squad selection and announcement rendering.
type Service struct {
	store Store
	cfg   Config

	// mu serializes toggles so the cap checks and the mutation observe the
	// same selection.
	mu sync.Mutex
}

// NewService constructs a Service with the provided Store and rules.
func NewService(store Store, cfg Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// ToggleResult reports the outcome of one toggle call.
type ToggleResult struct {
	Selected        bool   `json:"selected"`
	Rejected        bool   `json:"rejected"`
	Reason          string `json:"reason,omitempty"`
	TotalSelected   int    `json:"totalSelected"`
	OverAgeSelected int    `json:"overAgeSelected"`
}

// Toggle flips a player in or out of a match selection. Removal always
// succeeds; additions are refused as silent no-ops when they would exceed
// the squad cap or the over-age cap.
func (s *Service) Toggle(matchID, playerID string) (ToggleResult, error) {
	if _, ok := s.store.GetMatch(matchID); !ok {
		return ToggleResult{}, ErrMatchNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	selection := s.store.Selection(matchID)
	if _, selected := selection[playerID]; selected {
		s.store.RemoveFromSelection(matchID, playerID)
		delete(selection, playerID)
		total, overAge := s.count(selection)
		return ToggleResult{Selected: false, TotalSelected: total, OverAgeSelected: overAge}, nil
	}

	player, ok := s.store.GetPlayer(playerID)
	if !ok {
		return ToggleResult{}, ErrPlayerNotFound
	}

	total, overAge := s.count(selection)
	if total >= s.cfg.MaxSize {
		return ToggleResult{
			Rejected:        true,
			Reason:          ReasonSquadFull,
			TotalSelected:   total,
			OverAgeSelected: overAge,
		}, nil
	}
	if s.cfg.Rules.OverAge(player.BirthYear) && overAge >= s.cfg.MaxOverAge {
		return ToggleResult{
			Rejected:        true,
			Reason:          ReasonOverAgeQuota,
			TotalSelected:   total,
			OverAgeSelected: overAge,
		}, nil
	}

	s.store.AddToSelection(matchID, playerID)
	selection[playerID] = struct{}{}
	total, overAge = s.count(selection)
	return ToggleResult{Selected: true, TotalSelected: total, OverAgeSelected: overAge}, nil
}

// count tallies the selection size and the over-age share. Ids no longer on
// the roster still occupy a slot but cannot be classified.
func (s *Service) count(selection map[string]struct{}) (total, overAge int) {
	total = len(selection)
	for playerID := range selection {
		if p, ok := s.store.GetPlayer(playerID); ok && s.cfg.Rules.OverAge(p.BirthYear) {
			overAge++
		}
	}
	return total, overAge
}

// Squad resolves the selected players for a match, ordered by role
// precedence and then name. Ids referencing deleted players are skipped.
func (s *Service) Squad(matchID string) ([]players.Player, error) {
	if _, ok := s.store.GetMatch(matchID); !ok {
		return nil, ErrMatchNotFound
	}

	selection := s.store.Selection(matchID)
	squad := make([]players.Player, 0, len(selection))
	for playerID := range selection {
		if p, ok := s.store.GetPlayer(playerID); ok {
			squad = append(squad, p)
		}
	}
	players.SortByRoleThenName(squad)
	return squad, nil
}
