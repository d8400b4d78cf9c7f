package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
)

func sampleState(date string) State {
	return State{
		Date: date,
		Players: []players.Player{
			{ID: "p1", Name: "Mario Rossi", Role: players.RoleAttaccante, BirthYear: "2008"},
		},
		Selections: map[string][]string{"m1": {"p1"}},
	}
}

func TestWriteAndLoadState(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)
	w.now = func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }

	if err := w.WriteState("2025-10-01", sampleState("2025-10-01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fs := NewFSStore(base)
	state, err := fs.LoadState("2025-10-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Players) != 1 || state.Players[0].Name != "Mario Rossi" {
		t.Fatalf("unexpected state %+v", state)
	}
	if state.Selections["m1"][0] != "p1" {
		t.Fatalf("expected selections restored, got %+v", state.Selections)
	}
}

func TestLoadLatestFollowsManifest(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)
	w.now = func() time.Time { return time.Date(2025, 10, 8, 12, 0, 0, 0, time.UTC) }

	if err := w.WriteState("2025-10-01", sampleState("2025-10-01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WriteState("2025-10-08", sampleState("2025-10-08")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, found, err := NewFSStore(base).LoadLatest()
	if err != nil || !found {
		t.Fatalf("expected snapshot, got found=%v err=%v", found, err)
	}
	if state.Date != "2025-10-08" {
		t.Fatalf("expected newest snapshot, got %s", state.Date)
	}
}

func TestLoadLatestEmpty(t *testing.T) {
	_, found, err := NewFSStore(t.TempDir()).LoadLatest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatalf("expected no snapshot")
	}
}

func TestRetentionPrunesOldSnapshots(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 7)
	w.now = func() time.Time { return time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC) }

	if err := w.WriteState("2025-10-01", sampleState("2025-10-01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.WriteState("2025-10-20", sampleState("2025-10-20")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(StatePath(base, "2025-10-01")); !os.IsNotExist(err) {
		t.Fatalf("expected old snapshot pruned, got %v", err)
	}
	if _, err := os.Stat(StatePath(base, "2025-10-20")); err != nil {
		t.Fatalf("expected recent snapshot kept, got %v", err)
	}

	m := readManifest(base, 7)
	if len(m.Dates) != 1 || m.Dates[0] != "2025-10-20" {
		t.Fatalf("unexpected manifest %+v", m)
	}
}

func TestWriteStateSkipsIdenticalContent(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 14)
	w.now = func() time.Time { return time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC) }

	if err := w.WriteState("2025-10-01", sampleState("2025-10-01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, err := os.Stat(StatePath(base, "2025-10-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := w.WriteState("2025-10-01", sampleState("2025-10-01")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after, err := os.Stat(StatePath(base, "2025-10-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatalf("expected identical content to be left alone")
	}
}
