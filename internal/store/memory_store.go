package store

import (
	"sync"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
)

// MemoryStore owns every entity collection as thread-safe in-memory state.
// The SetX methods replace a whole collection (snapshot semantics); the
// per-entity methods are single mutations.
type MemoryStore struct {
	mu         sync.RWMutex
	players    map[string]players.Player
	sessions   map[string]trainings.Session
	attendance map[string]map[string]trainings.AttendanceStatus
	matches    map[string]matches.Match
	selections map[string]map[string]struct{}
	stats      map[string]map[string]stats.StatLine
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:    make(map[string]players.Player),
		sessions:   make(map[string]trainings.Session),
		attendance: make(map[string]map[string]trainings.AttendanceStatus),
		matches:    make(map[string]matches.Match),
		selections: make(map[string]map[string]struct{}),
		stats:      make(map[string]map[string]stats.StatLine),
	}
}

// ListPlayers returns a copy of the current roster.
func (s *MemoryStore) ListPlayers() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	return result
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(id string) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	return p, ok
}

// UpsertPlayer inserts or replaces a single player.
func (s *MemoryStore) UpsertPlayer(p players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.ID] = p
}

// DeletePlayer removes a player from the roster. Historical attendance and
// statistics referencing the id are left in place.
func (s *MemoryStore) DeletePlayer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
}

// SetPlayers replaces the roster with a new snapshot.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]players.Player, len(items))
	for _, p := range items {
		s.players[p.ID] = p
	}
}

// ListSessions returns a copy of the training sessions.
func (s *MemoryStore) ListSessions() []trainings.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]trainings.Session, 0, len(s.sessions))
	for _, t := range s.sessions {
		result = append(result, t)
	}
	return result
}

// GetSession retrieves a session by ID.
func (s *MemoryStore) GetSession(id string) (trainings.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.sessions[id]
	return t, ok
}

// CreateSession stores a session and seeds its attendance sub-map in one
// step, so a new session never appears without its defaults.
func (s *MemoryStore) CreateSession(session trainings.Session, seed map[string]trainings.AttendanceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	entries := make(map[string]trainings.AttendanceStatus, len(seed))
	for playerID, status := range seed {
		entries[playerID] = status
	}
	s.attendance[session.ID] = entries
}

// DeleteSession removes a session and cascades to its attendance entries.
// It reports whether the session existed.
func (s *MemoryStore) DeleteSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	delete(s.attendance, id)
	return ok
}

// SetSessions replaces the sessions with a new snapshot.
func (s *MemoryStore) SetSessions(items []trainings.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = make(map[string]trainings.Session, len(items))
	for _, t := range items {
		s.sessions[t.ID] = t
	}
}

// SessionAttendance returns a copy of one session's attendance entries.
func (s *MemoryStore) SessionAttendance(sessionID string) map[string]trainings.AttendanceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.attendance[sessionID]
	result := make(map[string]trainings.AttendanceStatus, len(entries))
	for playerID, status := range entries {
		result[playerID] = status
	}
	return result
}

// SetAttendanceStatus upserts one attendance entry.
func (s *MemoryStore) SetAttendanceStatus(sessionID, playerID string, status trainings.AttendanceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.attendance[sessionID]
	if !ok {
		entries = make(map[string]trainings.AttendanceStatus)
		s.attendance[sessionID] = entries
	}
	entries[playerID] = status
}

// AllAttendance returns a deep copy of the attendance ledger.
func (s *MemoryStore) AllAttendance() map[string]map[string]trainings.AttendanceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]map[string]trainings.AttendanceStatus, len(s.attendance))
	for sessionID, entries := range s.attendance {
		inner := make(map[string]trainings.AttendanceStatus, len(entries))
		for playerID, status := range entries {
			inner[playerID] = status
		}
		result[sessionID] = inner
	}
	return result
}

// SetAttendance replaces the whole attendance ledger with a new snapshot.
func (s *MemoryStore) SetAttendance(ledger map[string]map[string]trainings.AttendanceStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendance = make(map[string]map[string]trainings.AttendanceStatus, len(ledger))
	for sessionID, entries := range ledger {
		inner := make(map[string]trainings.AttendanceStatus, len(entries))
		for playerID, status := range entries {
			inner[playerID] = status
		}
		s.attendance[sessionID] = inner
	}
}

// ListMatches returns a copy of the season calendar.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]matches.Match, 0, len(s.matches))
	for _, m := range s.matches {
		result = append(result, m)
	}
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok
}

// SetMatches replaces the season calendar with a new snapshot.
func (s *MemoryStore) SetMatches(items []matches.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[string]matches.Match, len(items))
	for _, m := range items {
		s.matches[m.ID] = m
	}
}

// Selection returns the selected player ids for one match.
func (s *MemoryStore) Selection(matchID string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := s.selections[matchID]
	result := make(map[string]struct{}, len(selected))
	for playerID := range selected {
		result[playerID] = struct{}{}
	}
	return result
}

// AddToSelection marks a player as convocated for a match.
func (s *MemoryStore) AddToSelection(matchID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, ok := s.selections[matchID]
	if !ok {
		selected = make(map[string]struct{})
		s.selections[matchID] = selected
	}
	selected[playerID] = struct{}{}
}

// RemoveFromSelection drops a player from a match selection.
func (s *MemoryStore) RemoveFromSelection(matchID, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if selected, ok := s.selections[matchID]; ok {
		delete(selected, playerID)
		if len(selected) == 0 {
			delete(s.selections, matchID)
		}
	}
}

// AllSelections returns every match selection as id lists.
func (s *MemoryStore) AllSelections() map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]string, len(s.selections))
	for matchID, selected := range s.selections {
		list := make([]string, 0, len(selected))
		for playerID := range selected {
			list = append(list, playerID)
		}
		result[matchID] = list
	}
	return result
}

// SetSelections replaces every match selection with a new snapshot.
func (s *MemoryStore) SetSelections(selections map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections = make(map[string]map[string]struct{}, len(selections))
	for matchID, list := range selections {
		selected := make(map[string]struct{}, len(list))
		for _, playerID := range list {
			selected[playerID] = struct{}{}
		}
		s.selections[matchID] = selected
	}
}

// MatchStats returns a copy of one match's stat lines.
func (s *MemoryStore) MatchStats(matchID string) map[string]stats.StatLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.stats[matchID]
	result := make(map[string]stats.StatLine, len(lines))
	for playerID, line := range lines {
		result[playerID] = line
	}
	return result
}

// SetStatLine upserts one player's stat line for a match.
func (s *MemoryStore) SetStatLine(matchID, playerID string, line stats.StatLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.stats[matchID]
	if !ok {
		lines = make(map[string]stats.StatLine)
		s.stats[matchID] = lines
	}
	lines[playerID] = line
}

// AllStats returns a deep copy of the statistics ledger.
func (s *MemoryStore) AllStats() map[string]map[string]stats.StatLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]map[string]stats.StatLine, len(s.stats))
	for matchID, lines := range s.stats {
		inner := make(map[string]stats.StatLine, len(lines))
		for playerID, line := range lines {
			inner[playerID] = line
		}
		result[matchID] = inner
	}
	return result
}

// SetStats replaces the statistics ledger with a new snapshot.
func (s *MemoryStore) SetStats(ledger map[string]map[string]stats.StatLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = make(map[string]map[string]stats.StatLine, len(ledger))
	for matchID, lines := range ledger {
		inner := make(map[string]stats.StatLine, len(lines))
		for playerID, line := range lines {
			inner[playerID] = line
		}
		s.stats[matchID] = inner
	}
}
