package gormstore

import (
	"fmt"
	"log/slog"

	moderncsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	_ "modernc.org/sqlite"

	"github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/store"
)

// Store is a write-through persistent store: reads come from an in-memory
// aggregate bulk-loaded at open time, every mutation is mirrored to SQLite.
// A failed write is logged and the in-memory state keeps its last-known-good
// value.
type Store struct {
	mem    *store.MemoryStore
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the SQLite database at path, migrates the schema, and
// bulk-loads every collection into memory.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(moderncsqlite.New(moderncsqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gormstore: open %s: %w", path, err)
	}

	db.Exec("PRAGMA foreign_keys = ON;")

	if err := db.AutoMigrate(&playerRow{}, &sessionRow{}, &attendanceRow{}, &selectionRow{}, &statRow{}); err != nil {
		return nil, fmt.Errorf("gormstore: migrate: %w", err)
	}

	s := &Store{
		mem:    store.NewMemoryStore(),
		db:     db,
		logger: logger,
	}
	if err := s.loadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadAll() error {
	var playerRows []playerRow
	if err := s.db.Find(&playerRows).Error; err != nil {
		return fmt.Errorf("gormstore: load players: %w", err)
	}
	roster := make([]players.Player, 0, len(playerRows))
	for _, r := range playerRows {
		roster = append(roster, players.Player{
			ID:        r.ID,
			Name:      r.Name,
			Role:      players.Role(r.Role),
			BirthYear: r.BirthYear,
			Number:    r.Number,
		})
	}
	s.mem.SetPlayers(roster)

	var sessionRows []sessionRow
	if err := s.db.Find(&sessionRows).Error; err != nil {
		return fmt.Errorf("gormstore: load sessions: %w", err)
	}
	sessions := make([]trainings.Session, 0, len(sessionRows))
	for _, r := range sessionRows {
		sessions = append(sessions, trainings.Session{ID: r.ID, Date: r.Date, Notes: r.Notes})
	}
	s.mem.SetSessions(sessions)

	var attendanceRows []attendanceRow
	if err := s.db.Find(&attendanceRows).Error; err != nil {
		return fmt.Errorf("gormstore: load attendance: %w", err)
	}
	ledger := make(map[string]map[string]trainings.AttendanceStatus)
	for _, r := range attendanceRows {
		entries, ok := ledger[r.SessionID]
		if !ok {
			entries = make(map[string]trainings.AttendanceStatus)
			ledger[r.SessionID] = entries
		}
		entries[r.PlayerID] = trainings.AttendanceStatus(r.Status)
	}
	s.mem.SetAttendance(ledger)

	var selectionRows []selectionRow
	if err := s.db.Find(&selectionRows).Error; err != nil {
		return fmt.Errorf("gormstore: load selections: %w", err)
	}
	selections := make(map[string][]string)
	for _, r := range selectionRows {
		selections[r.MatchID] = append(selections[r.MatchID], r.PlayerID)
	}
	s.mem.SetSelections(selections)

	var statRows []statRow
	if err := s.db.Find(&statRows).Error; err != nil {
		return fmt.Errorf("gormstore: load stats: %w", err)
	}
	statLedger := make(map[string]map[string]stats.StatLine)
	for _, r := range statRows {
		lines, ok := statLedger[r.MatchID]
		if !ok {
			lines = make(map[string]stats.StatLine)
			statLedger[r.MatchID] = lines
		}
		lines[r.PlayerID] = stats.StatLine{
			Goals:         r.Goals,
			YellowCards:   r.YellowCards,
			RedCards:      r.RedCards,
			MinutesPlayed: r.MinutesPlayed,
		}
	}
	s.mem.SetStats(statLedger)

	return nil
}

func (s *Store) persist(op string, err error) {
	if err != nil {
		logging.Error(s.logger, "gormstore write failed", err, "op", op)
	}
}

func (s *Store) upsert(op string, row any) {
	s.persist(op, s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error)
}

// ListPlayers returns the current roster.
func (s *Store) ListPlayers() []players.Player { return s.mem.ListPlayers() }

// GetPlayer retrieves a player by ID.
func (s *Store) GetPlayer(id string) (players.Player, bool) { return s.mem.GetPlayer(id) }

// UpsertPlayer inserts or replaces a single player.
func (s *Store) UpsertPlayer(p players.Player) {
	s.mem.UpsertPlayer(p)
	s.upsert("upsert player", &playerRow{
		ID:        p.ID,
		Name:      p.Name,
		Role:      string(p.Role),
		BirthYear: p.BirthYear,
		Number:    p.Number,
	})
}

// DeletePlayer removes a player from the roster.
func (s *Store) DeletePlayer(id string) {
	s.mem.DeletePlayer(id)
	s.persist("delete player", s.db.Delete(&playerRow{ID: id}).Error)
}

// SetPlayers replaces the roster with a new snapshot.
func (s *Store) SetPlayers(items []players.Player) {
	s.mem.SetPlayers(items)
	s.persist("replace players", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&playerRow{}).Error; err != nil {
			return err
		}
		for _, p := range items {
			row := playerRow{ID: p.ID, Name: p.Name, Role: string(p.Role), BirthYear: p.BirthYear, Number: p.Number}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// ListSessions returns the training sessions.
func (s *Store) ListSessions() []trainings.Session { return s.mem.ListSessions() }

// GetSession retrieves a session by ID.
func (s *Store) GetSession(id string) (trainings.Session, bool) { return s.mem.GetSession(id) }

// CreateSession stores a session with its seeded attendance.
func (s *Store) CreateSession(session trainings.Session, seed map[string]trainings.AttendanceStatus) {
	s.mem.CreateSession(session, seed)
	s.persist("create session", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sessionRow{ID: session.ID, Date: session.Date, Notes: session.Notes}).Error; err != nil {
			return err
		}
		for playerID, status := range seed {
			row := attendanceRow{SessionID: session.ID, PlayerID: playerID, Status: string(status)}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// DeleteSession removes a session and cascades to its attendance entries.
func (s *Store) DeleteSession(id string) bool {
	ok := s.mem.DeleteSession(id)
	s.persist("delete session", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&sessionRow{ID: id}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", id).Delete(&attendanceRow{}).Error
	}))
	return ok
}

// SetSessions replaces the sessions with a new snapshot.
func (s *Store) SetSessions(items []trainings.Session) {
	s.mem.SetSessions(items)
	s.persist("replace sessions", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&sessionRow{}).Error; err != nil {
			return err
		}
		for _, t := range items {
			if err := tx.Create(&sessionRow{ID: t.ID, Date: t.Date, Notes: t.Notes}).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// SessionAttendance returns one session's attendance entries.
func (s *Store) SessionAttendance(sessionID string) map[string]trainings.AttendanceStatus {
	return s.mem.SessionAttendance(sessionID)
}

// SetAttendanceStatus upserts one attendance entry.
func (s *Store) SetAttendanceStatus(sessionID, playerID string, status trainings.AttendanceStatus) {
	s.mem.SetAttendanceStatus(sessionID, playerID, status)
	s.upsert("upsert attendance", &attendanceRow{SessionID: sessionID, PlayerID: playerID, Status: string(status)})
}

// AllAttendance returns the attendance ledger.
func (s *Store) AllAttendance() map[string]map[string]trainings.AttendanceStatus {
	return s.mem.AllAttendance()
}

// SetAttendance replaces the attendance ledger with a new snapshot.
func (s *Store) SetAttendance(ledger map[string]map[string]trainings.AttendanceStatus) {
	s.mem.SetAttendance(ledger)
	s.persist("replace attendance", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&attendanceRow{}).Error; err != nil {
			return err
		}
		for sessionID, entries := range ledger {
			for playerID, status := range entries {
				row := attendanceRow{SessionID: sessionID, PlayerID: playerID, Status: string(status)}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}))
}

// ListMatches returns the season calendar.
func (s *Store) ListMatches() []matches.Match { return s.mem.ListMatches() }

// GetMatch retrieves a match by ID.
func (s *Store) GetMatch(id string) (matches.Match, bool) { return s.mem.GetMatch(id) }

// SetMatches replaces the season calendar. Fixtures are not persisted; they
// are reseeded from the provider on every boot.
func (s *Store) SetMatches(items []matches.Match) { s.mem.SetMatches(items) }

// Selection returns the selected player ids for one match.
func (s *Store) Selection(matchID string) map[string]struct{} { return s.mem.Selection(matchID) }

// AddToSelection marks a player as convocated for a match.
func (s *Store) AddToSelection(matchID, playerID string) {
	s.mem.AddToSelection(matchID, playerID)
	s.upsert("add selection", &selectionRow{MatchID: matchID, PlayerID: playerID})
}

// RemoveFromSelection drops a player from a match selection.
func (s *Store) RemoveFromSelection(matchID, playerID string) {
	s.mem.RemoveFromSelection(matchID, playerID)
	s.persist("remove selection", s.db.
		Where("match_id = ? AND player_id = ?", matchID, playerID).
		Delete(&selectionRow{}).Error)
}

// AllSelections returns every match selection as id lists.
func (s *Store) AllSelections() map[string][]string { return s.mem.AllSelections() }

// SetSelections replaces every match selection with a new snapshot.
func (s *Store) SetSelections(selections map[string][]string) {
	s.mem.SetSelections(selections)
	s.persist("replace selections", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&selectionRow{}).Error; err != nil {
			return err
		}
		for matchID, list := range selections {
			for _, playerID := range list {
				if err := tx.Create(&selectionRow{MatchID: matchID, PlayerID: playerID}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}))
}

// MatchStats returns one match's stat lines.
func (s *Store) MatchStats(matchID string) map[string]stats.StatLine { return s.mem.MatchStats(matchID) }

// SetStatLine upserts one player's stat line for a match.
func (s *Store) SetStatLine(matchID, playerID string, line stats.StatLine) {
	s.mem.SetStatLine(matchID, playerID, line)
	s.upsert("upsert stat line", &statRow{
		MatchID:       matchID,
		PlayerID:      playerID,
		Goals:         line.Goals,
		YellowCards:   line.YellowCards,
		RedCards:      line.RedCards,
		MinutesPlayed: line.MinutesPlayed,
	})
}

// AllStats returns the statistics ledger.
func (s *Store) AllStats() map[string]map[string]stats.StatLine { return s.mem.AllStats() }

// SetStats replaces the statistics ledger with a new snapshot.
func (s *Store) SetStats(ledger map[string]map[string]stats.StatLine) {
	s.mem.SetStats(ledger)
	s.persist("replace stats", s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&statRow{}).Error; err != nil {
			return err
		}
		for matchID, lines := range ledger {
			for playerID, line := range lines {
				row := statRow{
					MatchID:       matchID,
					PlayerID:      playerID,
					Goals:         line.Goals,
					YellowCards:   line.YellowCards,
					RedCards:      line.RedCards,
					MinutesPlayed: line.MinutesPlayed,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}))
}
