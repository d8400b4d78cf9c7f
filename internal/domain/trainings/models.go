package trainings

import "strings"

// AttendanceStatus is the recorded outcome for a player at one session.
// Absence of an entry means "unknown" and is distinct from all three values.
type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "present"
	StatusAbsent    AttendanceStatus = "absent"
	StatusJustified AttendanceStatus = "justified"
)

// ParseStatus matches an attendance status case-insensitively.
func ParseStatus(value string) (AttendanceStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(StatusPresent):
		return StatusPresent, true
	case string(StatusAbsent):
		return StatusAbsent, true
	case string(StatusJustified):
		return StatusJustified, true
	}
	return "", false
}

// Session is a single training event.
type Session struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
}

// MonthlySummary is the per-player attendance roll-up for one calendar month.
type MonthlySummary struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	Justified  int    `json:"justified"`
}
