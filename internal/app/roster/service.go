package roster

import (
	"errors"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/ids"
)

var (
	// ErrMissingFields is returned when a required player field is empty.
	ErrMissingFields = errors.New("name, role and birth year are required")
	// ErrInvalidRole is returned when the role does not match the fixed set.
	ErrInvalidRole = errors.New("unknown role")
	// ErrEmptyName is returned when an update would blank the player name.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrNotFound is returned when the player id is not on the roster.
	ErrNotFound = errors.New("player not found")
)

// Store defines the roster operations the service needs.
type Store interface {
	ListPlayers() []players.Player
	GetPlayer(id string) (players.Player, bool)
	UpsertPlayer(p players.Player)
	DeletePlayer(id string)
}

// Service owns player registry operations.
type Service struct {
	store Store
	rules players.CohortRules
	newID func() string
}

// NewService constructs a Service with the provided Store and cohort rules.
func NewService(store Store, rules players.CohortRules) *Service {
	return &Service{
		store: store,
		rules: rules,
		newID: ids.New,
	}
}

// Players returns the roster sorted by name.
func (s *Service) Players() []players.Player {
	items := s.store.ListPlayers()
	players.SortByName(items)
	return items
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.store.GetPlayer(id)
}

// AddPlayer validates and inserts a new player with a fresh id.
func (s *Service) AddPlayer(name, role, birthYear, number string) (players.Player, error) {
	name = strings.TrimSpace(name)
	birthYear = strings.TrimSpace(birthYear)
	if name == "" || strings.TrimSpace(role) == "" || birthYear == "" {
		return players.Player{}, ErrMissingFields
	}
	parsedRole, ok := players.ParseRole(role)
	if !ok {
		return players.Player{}, ErrInvalidRole
	}

	p := players.Player{
		ID:        s.newID(),
		Name:      name,
		Role:      parsedRole,
		BirthYear: birthYear,
		Number:    strings.TrimSpace(number),
	}
	s.store.UpsertPlayer(p)
	return p, nil
}

// Patch carries optional player updates; nil fields are left unchanged.
type Patch struct {
	Name      *string
	Role      *string
	BirthYear *string
	Number    *string
}

// UpdatePlayer applies a patch to an existing player. A patch that would
// blank the name is rejected without touching state.
func (s *Service) UpdatePlayer(id string, patch Patch) (players.Player, error) {
	p, ok := s.store.GetPlayer(id)
	if !ok {
		return players.Player{}, ErrNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return players.Player{}, ErrEmptyName
		}
		p.Name = name
	}
	if patch.Role != nil {
		parsedRole, ok := players.ParseRole(*patch.Role)
		if !ok {
			return players.Player{}, ErrInvalidRole
		}
		p.Role = parsedRole
	}
	if patch.BirthYear != nil {
		year := strings.TrimSpace(*patch.BirthYear)
		if year != "" {
			p.BirthYear = year
		}
	}
	if patch.Number != nil {
		p.Number = strings.TrimSpace(*patch.Number)
	}

	s.store.UpsertPlayer(p)
	return p, nil
}

// RemovePlayer deletes a player from the roster. Historical attendance and
// statistics keep their entries and are skipped by roll-ups.
func (s *Service) RemovePlayer(id string) error {
	if _, ok := s.store.GetPlayer(id); !ok {
		return ErrNotFound
	}
	s.store.DeletePlayer(id)
	return nil
}
