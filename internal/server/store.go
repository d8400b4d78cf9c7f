package server

import (
	"log/slog"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/app/roster"
	"github.com/seguro-calcio/roster-service/internal/app/squad"
	"github.com/seguro-calcio/roster-service/internal/app/stats"
	"github.com/seguro-calcio/roster-service/internal/app/trainings"
	"github.com/seguro-calcio/roster-service/internal/config"
	domainmatches "github.com/seguro-calcio/roster-service/internal/domain/matches"
	"github.com/seguro-calcio/roster-service/internal/snapshots"
	"github.com/seguro-calcio/roster-service/internal/store"
	"github.com/seguro-calcio/roster-service/internal/store/gormstore"
)

// Store is the union of every collection contract the services need. Both
// the memory store and the SQLite-backed store satisfy it.
type Store interface {
	roster.Store
	trainings.Store
	squad.Store
	stats.Store
	snapshots.Store
	GetMatch(id string) (domainmatches.Match, bool)
	ListMatches() []domainmatches.Match
	SetMatches([]domainmatches.Match)
}

// buildStore selects the backing store from configuration. Unknown drivers
// fall back to memory.
func buildStore(cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	if strings.EqualFold(cfg.Driver, "sqlite") {
		return gormstore.Open(cfg.SQLitePath, logger)
	}
	return store.NewMemoryStore(), nil
}
