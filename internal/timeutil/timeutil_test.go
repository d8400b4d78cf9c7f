package timeutil

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-10-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDate(parsed) != "2025-10-05" {
		t.Fatalf("expected round trip, got %s", FormatDate(parsed))
	}
	if _, err := ParseDate("05/10/2025"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
}

func TestInMonth(t *testing.T) {
	if !InMonth("2025-10-05", "2025-10") {
		t.Fatalf("expected date inside month")
	}
	if InMonth("2025-11-01", "2025-10") {
		t.Fatalf("expected date outside month")
	}
	if InMonth("not-a-date", "2025-10") {
		t.Fatalf("malformed dates never match")
	}
}

func TestMinutesBefore(t *testing.T) {
	if got := MinutesBefore("14:45", 90); got != "13:15" {
		t.Fatalf("expected 13:15, got %s", got)
	}
	if got := MinutesBefore("00:30", 90); got != "23:00" {
		t.Fatalf("expected wrap within the day, got %s", got)
	}
	if got := MinutesBefore("kickoff", 90); got != "kickoff" {
		t.Fatalf("expected unparseable input to pass through, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	utc := time.Date(2025, 10, 5, 23, 30, 0, 0, time.UTC)
	if FormatDate(utc) != "2025-10-05" {
		t.Fatalf("unexpected date %s", FormatDate(utc))
	}
}
