package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" || cfg.TeamName != "Seguro Calcio" || cfg.Competition != "Campionato Juniores" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.Roster.Cohorts) != 5 || cfg.Roster.Cohorts[0] != "2006" {
		t.Fatalf("unexpected cohorts %v", cfg.Roster.Cohorts)
	}
	if cfg.Squad.MaxSize != 20 || cfg.Squad.MaxOverAge != 4 {
		t.Fatalf("unexpected squad quotas %+v", cfg.Squad)
	}
	if cfg.Store.Driver != "memory" {
		t.Fatalf("unexpected store driver %s", cfg.Store.Driver)
	}
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Interval != 5*time.Minute || cfg.Snapshots.RetentionDays != 14 {
		t.Fatalf("unexpected snapshot config %+v", cfg.Snapshots)
	}
	if cfg.Standings.URL != "" || cfg.Assistant.URL != "" {
		t.Fatalf("expected external endpoints disabled by default")
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TEAM_NAME", "Altra Squadra")
	t.Setenv("ROSTER_COHORTS", "2007, 2008 ,2009")
	t.Setenv("SQUAD_MAX_SIZE", "18")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SNAPSHOT_INTERVAL", "30s")
	t.Setenv("STANDINGS_URL", "https://example.com/classifica")

	cfg := Load()
	if cfg.Port != "8080" || cfg.TeamName != "Altra Squadra" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if len(cfg.Roster.Cohorts) != 3 || cfg.Roster.Cohorts[1] != "2008" {
		t.Fatalf("expected trimmed cohort list, got %v", cfg.Roster.Cohorts)
	}
	if cfg.Squad.MaxSize != 18 {
		t.Fatalf("unexpected max size %d", cfg.Squad.MaxSize)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Fatalf("unexpected driver %s", cfg.Store.Driver)
	}
	if cfg.Snapshots.Interval != 30*time.Second {
		t.Fatalf("unexpected interval %s", cfg.Snapshots.Interval)
	}
	if cfg.Standings.URL != "https://example.com/classifica" {
		t.Fatalf("unexpected standings URL %s", cfg.Standings.URL)
	}
}

func TestEnvHelpersRejectGarbage(t *testing.T) {
	t.Setenv("SQUAD_MAX_SIZE", "venti")
	t.Setenv("SNAPSHOT_INTERVAL", "-5m")
	t.Setenv("SNAPSHOT_ENABLED", "forse")

	cfg := Load()
	if cfg.Squad.MaxSize != 20 {
		t.Fatalf("expected fallback on bad int, got %d", cfg.Squad.MaxSize)
	}
	if cfg.Snapshots.Interval != 5*time.Minute {
		t.Fatalf("expected fallback on bad duration, got %s", cfg.Snapshots.Interval)
	}
	if !cfg.Snapshots.Enabled {
		t.Fatalf("expected fallback on bad bool")
	}
}
