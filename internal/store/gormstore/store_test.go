package gormstore

import (
	"path/filepath"
	"testing"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/domain/stats"
	"github.com/seguro-calcio/roster-service/internal/domain/trainings"
	"github.com/seguro-calcio/roster-service/internal/testutil"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	s, err := Open(path, logger)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	s := openTestStore(t, path)
	s.UpsertPlayer(players.Player{ID: "p1", Name: "Mario Rossi", Role: players.RoleAttaccante, BirthYear: "2008", Number: "9"})
	s.CreateSession(trainings.Session{ID: "s1", Date: "2025-10-01", Notes: "possesso"}, map[string]trainings.AttendanceStatus{
		"p1": trainings.StatusPresent,
	})
	s.AddToSelection("m1", "p1")
	s.SetStatLine("m1", "p1", stats.StatLine{Goals: 2, MinutesPlayed: 90})

	reopened := openTestStore(t, path)

	p, ok := reopened.GetPlayer("p1")
	if !ok || p.Name != "Mario Rossi" || p.Role != players.RoleAttaccante || p.Number != "9" {
		t.Fatalf("expected player restored, got %+v %v", p, ok)
	}
	if _, ok := reopened.GetSession("s1"); !ok {
		t.Fatalf("expected session restored")
	}
	if got := reopened.SessionAttendance("s1")["p1"]; got != trainings.StatusPresent {
		t.Fatalf("expected attendance restored, got %s", got)
	}
	if sel := reopened.Selection("m1"); len(sel) != 1 {
		t.Fatalf("expected selection restored, got %v", sel)
	}
	if line := reopened.MatchStats("m1")["p1"]; line.Goals != 2 || line.MinutesPlayed != 90 {
		t.Fatalf("expected stats restored, got %+v", line)
	}
}

func TestDeletesArePersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	s := openTestStore(t, path)
	s.UpsertPlayer(players.Player{ID: "p1", Name: "Mario Rossi", BirthYear: "2008"})
	s.CreateSession(trainings.Session{ID: "s1", Date: "2025-10-01"}, map[string]trainings.AttendanceStatus{
		"p1": trainings.StatusPresent,
	})

	s.DeletePlayer("p1")
	if !s.DeleteSession("s1") {
		t.Fatalf("expected session deletion")
	}

	reopened := openTestStore(t, path)
	if _, ok := reopened.GetPlayer("p1"); ok {
		t.Fatalf("expected player deletion persisted")
	}
	if entries := reopened.SessionAttendance("s1"); len(entries) != 0 {
		t.Fatalf("expected attendance cascade persisted, got %v", entries)
	}
}

func TestUpsertOverwritesExistingRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	s := openTestStore(t, path)
	s.UpsertPlayer(players.Player{ID: "p1", Name: "Mario Rossi", Role: players.RoleAttaccante, BirthYear: "2008"})
	s.UpsertPlayer(players.Player{ID: "p1", Name: "Mario Rossi", Role: players.RolePortiere, BirthYear: "2008"})

	reopened := openTestStore(t, path)
	p, _ := reopened.GetPlayer("p1")
	if p.Role != players.RolePortiere {
		t.Fatalf("expected overwritten role, got %+v", p)
	}
	if len(reopened.ListPlayers()) != 1 {
		t.Fatalf("expected single row, got %d", len(reopened.ListPlayers()))
	}
}

func TestMatchesAreNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	s := openTestStore(t, path)
	s.SetMatches(nil)
	if len(s.ListMatches()) != 0 {
		t.Fatalf("expected empty calendar")
	}
}
