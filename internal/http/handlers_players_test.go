package http

import (
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/seguro-calcio/roster-service/internal/app/roster"
	"github.com/seguro-calcio/roster-service/internal/domain/players"
	"github.com/seguro-calcio/roster-service/internal/metrics"
	"github.com/seguro-calcio/roster-service/internal/testutil"
)

func TestPlayersCRUD(t *testing.T) {
	env := newTestEnv(t)

	p := env.addPlayer(t, "Mario Rossi", "Attaccante", "2008")
	if p.ID == "" || p.Role != players.RoleAttaccante {
		t.Fatalf("unexpected player %+v", p)
	}

	rr := testutil.Serve(env.router, nethttp.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var list []players.Player
	testutil.DecodeJSON(t, rr, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 player, got %d", len(list))
	}

	rr = testutil.Serve(env.router, nethttp.MethodPatch, "/players/"+p.ID,
		strings.NewReader(`{"role":"portiere","number":"1"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var updated players.Player
	testutil.DecodeJSON(t, rr, &updated)
	if updated.Role != players.RolePortiere || updated.Number != "1" {
		t.Fatalf("unexpected update %+v", updated)
	}

	rr = testutil.Serve(env.router, nethttp.MethodDelete, "/players/"+p.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNoContent)

	rr = testutil.Serve(env.router, nethttp.MethodGet, "/players/"+p.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestPlayersValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.Serve(env.router, nethttp.MethodPost, "/players",
		strings.NewReader(`{"name":"Mario Rossi","role":"libero","birthYear":"2008"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)

	rr = testutil.Serve(env.router, nethttp.MethodPost, "/players", strings.NewReader("{"))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)

	p := env.addPlayer(t, "Mario Rossi", "Attaccante", "2008")
	rr = testutil.Serve(env.router, nethttp.MethodPut, "/players/"+p.ID,
		strings.NewReader(`{"name":"  "}`))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func TestImportPlayersEndpoint(t *testing.T) {
	env := newTestEnv(t)

	csv := "nome,cognome,ruolo,anno di nascita\nMario,Rossi,Attaccante,2008\nLuca,Bianchi,libero,2008\n"
	rr := testutil.Serve(env.router, nethttp.MethodPost, "/players/import", strings.NewReader(csv))
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var result roster.ImportResult
	testutil.DecodeJSON(t, rr, &result)
	if result.Imported != 1 || result.Skipped != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	if env.recorder.ImportRows(metrics.OutcomeImported) != 1 {
		t.Fatalf("expected import metric recorded")
	}

	rr = testutil.Serve(env.router, nethttp.MethodPost, "/players/import",
		strings.NewReader("colonna\nvalore\n"))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func TestPlayersMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	rr := testutil.Serve(env.router, nethttp.MethodDelete, "/players", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)

	rr = testutil.Serve(env.router, nethttp.MethodGet, "/players/import", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
}
