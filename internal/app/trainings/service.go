package trainings

import (
	"errors"
	"sort"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
	"github.com/seguro-calcio/roster-service/internal/ids"
	"github.com/seguro-calcio/roster-service/internal/timeutil"
)

var (
	// ErrMissingDate is returned when a session is created without a date.
	ErrMissingDate = errors.New("session date is required")
	// ErrInvalidStatus is returned for attendance values outside the enum.
	ErrInvalidStatus = errors.New("status must be present, absent or justified")
	// ErrInvalidMonth is returned for month values not shaped YYYY-MM.
	ErrInvalidMonth = errors.New("month must be formatted YYYY-MM")
	// ErrSessionNotFound is returned when the session id is unknown.
	ErrSessionNotFound = errors.New("session not found")
)

// Store defines the training-ledger operations the service needs.
type Store interface {
	ListPlayers() []players.Player
	ListSessions() []trainings.Session
	GetSession(id string) (trainings.Session, bool)
	CreateSession(session trainings.Session, seed map[string]trainings.AttendanceStatus)
	DeleteSession(id string) bool
	SessionAttendance(sessionID string) map[string]trainings.AttendanceStatus
	SetAttendanceStatus(sessionID, playerID string, status trainings.AttendanceStatus)
	AllAttendance() map[string]map[string]trainings.AttendanceStatus
}

// Service owns training sessions and the attendance ledger.
type Service struct {
	store Store
	newID func() string
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, newID: ids.New}
}

// Sessions returns all sessions, newest date first.
func (s *Service) Sessions() []trainings.Session {
	items := s.store.ListSessions()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// CreateSession creates a session and seeds attendance to "present" for
// every player on the roster at creation time. Players added later get no
// retroactive entries.
func (s *Service) CreateSession(date, notes string) (trainings.Session, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return trainings.Session{}, ErrMissingDate
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		return trainings.Session{}, ErrMissingDate
	}

	session := trainings.Session{
		ID:    s.newID(),
		Date:  date,
		Notes: strings.TrimSpace(notes),
	}

	seed := make(map[string]trainings.AttendanceStatus)
	for _, p := range s.store.ListPlayers() {
		seed[p.ID] = trainings.StatusPresent
	}
	s.store.CreateSession(session, seed)
	return session, nil
}

// SetAttendance upserts one attendance entry. The only validation is the
// status enum.
func (s *Service) SetAttendance(sessionID, playerID, status string) error {
	parsed, ok := trainings.ParseStatus(status)
	if !ok {
		return ErrInvalidStatus
	}
	s.store.SetAttendanceStatus(sessionID, playerID, parsed)
	return nil
}

// Attendance returns one session's entries keyed by player id.
func (s *Service) Attendance(sessionID string) (map[string]trainings.AttendanceStatus, error) {
	if _, ok := s.store.GetSession(sessionID); !ok {
		return nil, ErrSessionNotFound
	}
	return s.store.SessionAttendance(sessionID), nil
}

// DeleteSession removes a session and all its attendance entries. It
// reports whether the session existed so callers holding a "selected
// session" can clear it.
func (s *Service) DeleteSession(sessionID string) bool {
	return s.store.DeleteSession(sessionID)
}

// MonthlySummary counts attendance statuses per roster player across every
// session whose date falls in the given YYYY-MM month. Players with no
// matching entries are reported with all-zero counts.
func (s *Service) MonthlySummary(month string) ([]trainings.MonthlySummary, error) {
	if _, err := timeutil.ParseMonth(month); err != nil {
		return nil, ErrInvalidMonth
	}

	ledger := s.store.AllAttendance()
	var monthSessions []string
	for _, session := range s.store.ListSessions() {
		if timeutil.InMonth(session.Date, month) {
			monthSessions = append(monthSessions, session.ID)
		}
	}

	roster := s.store.ListPlayers()
	players.SortByName(roster)

	summary := make([]trainings.MonthlySummary, 0, len(roster))
	for _, p := range roster {
		row := trainings.MonthlySummary{PlayerID: p.ID, PlayerName: p.Name}
		for _, sessionID := range monthSessions {
			switch ledger[sessionID][p.ID] {
			case trainings.StatusPresent:
				row.Present++
			case trainings.StatusAbsent:
				row.Absent++
			case trainings.StatusJustified:
				row.Justified++
			}
		}
		summary = append(summary, row)
	}
	return summary, nil
}
