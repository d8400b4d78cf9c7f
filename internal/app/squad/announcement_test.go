package squad

import (
	"errors"
	"strings"
	"testing"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/store"
)

func TestAnnouncement(t *testing.T) {
	ms := store.NewMemoryStore()
	seedMatch(ms)
	ms.SetPlayers([]players.Player{
		{ID: "gk", Name: "Luca Bianchi", Role: players.RolePortiere, BirthYear: "2008"},
		{ID: "fw", Name: "Mario Rossi", Role: players.RoleAttaccante, BirthYear: "2008"},
	})
	svc := newTestService(ms)
	_, _ = svc.Toggle("m1", "fw")
	_, _ = svc.Toggle("m1", "gk")

	text, err := svc.Announcement("m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"CONVOCAZIONE - CAMPIONATO JUNIORES",
		"SEGURO CALCIO vs ACCADEMIA VITTUONE (Casa)",
		"Data: Domenica 5 Ottobre 2025",
		"Ritrovo: 13:15",
		"Calcio d'inizio: 14:45",
		"Campo: Via Vecchia Comasina 1 - Seguro",
		"Convocati (2):",
		"- Luca Bianchi (Portiere)",
		"- Mario Rossi (Attaccante)",
		"Si raccomanda la massima puntualità.",
		"Portare documento di identità e borsa completa.",
	}
	for _, line := range want {
		if !strings.Contains(text, line) {
			t.Fatalf("announcement missing %q:\n%s", line, text)
		}
	}

	// Goalkeeper is listed before the forward.
	if strings.Index(text, "Luca Bianchi") > strings.Index(text, "Mario Rossi") {
		t.Fatalf("expected goalkeeper first:\n%s", text)
	}

	// Same inputs, same output.
	again, _ := svc.Announcement("m1")
	if again != text {
		t.Fatalf("expected deterministic output")
	}
}

func TestAnnouncementEmptySquad(t *testing.T) {
	ms := store.NewMemoryStore()
	seedMatch(ms)
	svc := newTestService(ms)

	if _, err := svc.Announcement("m1"); !errors.Is(err, ErrEmptySquad) {
		t.Fatalf("expected empty squad error, got %v", err)
	}
	if _, err := svc.Announcement("missing"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected match not found, got %v", err)
	}
}
