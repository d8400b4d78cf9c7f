package http

import (
	nethttp "net/http"
	"strings"
	"testing"

	domaintrainings "github.com/seguro-calcio/roster-service/internal/domain/trainings"
	"github.com/seguro-calcio/roster-service/internal/testutil"
)

func createSession(t *testing.T, env *testEnv, date string) domaintrainings.Session {
	t.Helper()
	rr := testutil.Serve(env.router, nethttp.MethodPost, "/trainings",
		strings.NewReader(`{"date":"`+date+`"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusCreated)

	var session domaintrainings.Session
	testutil.DecodeJSON(t, rr, &session)
	return session
}

func TestTrainingsLifecycle(t *testing.T) {
	env := newTestEnv(t)
	p := env.addPlayer(t, "Mario Rossi", "Attaccante", "2008")
	session := createSession(t, env, "2025-10-01")

	// New sessions seed everyone as present.
	rr := testutil.Serve(env.router, nethttp.MethodGet, "/trainings/"+session.ID+"/attendance", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var entries map[string]domaintrainings.AttendanceStatus
	testutil.DecodeJSON(t, rr, &entries)
	if entries[p.ID] != domaintrainings.StatusPresent {
		t.Fatalf("expected seeded present, got %v", entries)
	}

	rr = testutil.Serve(env.router, nethttp.MethodPut, "/trainings/"+session.ID+"/attendance",
		strings.NewReader(`{"playerId":"`+p.ID+`","status":"absent"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusNoContent)

	rr = testutil.Serve(env.router, nethttp.MethodPut, "/trainings/"+session.ID+"/attendance",
		strings.NewReader(`{"playerId":"`+p.ID+`","status":"late"}`))
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)

	rr = testutil.Serve(env.router, nethttp.MethodGet, "/trainings", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var sessions []domaintrainings.Session
	testutil.DecodeJSON(t, rr, &sessions)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
}

func TestDeleteTrainingClearsSelection(t *testing.T) {
	env := newTestEnv(t)
	session := createSession(t, env, "2025-10-01")

	rr := testutil.Serve(env.router, nethttp.MethodDelete,
		"/trainings/"+session.ID+"?selected="+session.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var resp map[string]bool
	testutil.DecodeJSON(t, rr, &resp)
	if !resp["deleted"] || !resp["selectionCleared"] {
		t.Fatalf("unexpected response %v", resp)
	}

	// Attendance is gone with the session.
	rr = testutil.Serve(env.router, nethttp.MethodGet, "/trainings/"+session.ID+"/attendance", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)

	rr = testutil.Serve(env.router, nethttp.MethodDelete, "/trainings/"+session.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestMonthlySummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.addPlayer(t, "Mario Rossi", "Attaccante", "2008")
	createSession(t, env, "2025-10-01")

	rr := testutil.Serve(env.router, nethttp.MethodGet, "/trainings/summary?month=2025-10", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var summary []domaintrainings.MonthlySummary
	testutil.DecodeJSON(t, rr, &summary)
	if len(summary) != 1 || summary[0].Present != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	rr = testutil.Serve(env.router, nethttp.MethodGet, "/trainings/summary?month=ottobre", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func TestExportMonthlyEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.addPlayer(t, "Mario Rossi", "Attaccante", "2008")
	createSession(t, env, "2025-10-01")

	rr := testutil.Serve(env.router, nethttp.MethodGet, "/trainings/export?month=2025-10", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	if got := rr.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("unexpected content type %s", got)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "presenze-2025-10.csv") {
		t.Fatalf("unexpected disposition %s", got)
	}
	if !strings.HasPrefix(rr.Body.String(), "Player,Present,Absent,Justified") {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}
